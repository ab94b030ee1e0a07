package shell

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ivolkov/salesoffice/internal/datagen"
	"github.com/ivolkov/salesoffice/internal/models"
	"github.com/ivolkov/salesoffice/internal/repository"
)

// dateTimeLayout is the date format accepted for purchase delivery dates,
// e.g. 2024-03-01_15:04:05
const dateTimeLayout = "2006-01-02_15:04:05"

const usage = `Unknown/invalid command. Available commands:
product: create, get, get-all, update, delete, delete-all, generate
customer: create, get, get-all, update, delete, delete-all, generate
purchase: create, get, get-all, update, delete, delete-all, generate
query: 1 (products by manufacturer), 2 (customer purchases), 3 (update prices), 4 (sales by product)`

// argError reports a wrong argument count or shape. It is printed as-is
// instead of being wrapped in the generic execution error message.
type argError string

func (e argError) Error() string { return string(e) }

type Runner struct {
	products  *repository.ProductRepository
	customers *repository.CustomerRepository
	purchases *repository.PurchaseRepository
	gen       *datagen.Generator
	out       io.Writer
}

// NewRunner creates a shell runner writing its output to out
func NewRunner(
	products *repository.ProductRepository,
	customers *repository.CustomerRepository,
	purchases *repository.PurchaseRepository,
	gen *datagen.Generator,
	out io.Writer,
) *Runner {
	return &Runner{
		products:  products,
		customers: customers,
		purchases: purchases,
		gen:       gen,
		out:       out,
	}
}

// Run reads commands from in one line at a time until EOF or the literal
// "exit". Commands execute strictly sequentially.
func (r *Runner) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, "Enter command: ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "exit" {
			break
		}
		r.Execute(ctx, line)
	}

	return scanner.Err()
}

// Execute parses and runs a single command line, printing the result
func (r *Runner) Execute(ctx context.Context, line string) {
	cmd, ok := Parse(line)
	if !ok {
		fmt.Fprintln(r.out, usage)
		return
	}

	result, err := r.dispatch(ctx, cmd)
	if err != nil {
		var argErr argError
		if errors.As(err, &argErr) {
			fmt.Fprintln(r.out, argErr.Error())
			return
		}
		fmt.Fprintf(r.out, "Error executing command: %v\n", err)
		return
	}

	r.print(result)
}

func (r *Runner) dispatch(ctx context.Context, cmd Command) (any, error) {
	switch cmd.Entity {
	case EntityProduct:
		return r.runProduct(ctx, cmd.Action, cmd.Args)
	case EntityCustomer:
		return r.runCustomer(ctx, cmd.Action, cmd.Args)
	case EntityPurchase:
		return r.runPurchase(ctx, cmd.Action, cmd.Args)
	case EntityQuery:
		return r.runQuery(ctx, cmd.Action, cmd.Args)
	default:
		return nil, fmt.Errorf("unhandled entity %q", cmd.Entity)
	}
}

func (r *Runner) runProduct(ctx context.Context, action Action, args []string) (any, error) {
	switch action {
	case ActionCreate:
		if len(args) != 3 {
			return nil, argError("Product creation requires: name manufacturer unit")
		}
		return r.products.Create(ctx, models.CreateProduct{
			Name:         args[0],
			Manufacturer: args[1],
			Unit:         args[2],
		})
	case ActionGet:
		id, err := parseSingleID(action, args)
		if err != nil {
			return nil, err
		}
		return r.products.Get(ctx, id)
	case ActionGetAll:
		skip, limit, err := parsePage(args)
		if err != nil {
			return nil, err
		}
		return r.products.List(ctx, skip, limit)
	case ActionUpdate:
		if len(args) != 4 {
			return nil, argError("Product update requires: id name manufacturer unit")
		}
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		return r.products.Update(ctx, id, models.CreateProduct{
			Name:         args[1],
			Manufacturer: args[2],
			Unit:         args[3],
		})
	case ActionDelete:
		id, err := parseSingleID(action, args)
		if err != nil {
			return nil, err
		}
		if err := r.products.Delete(ctx, id); err != nil {
			return nil, err
		}
		return fmt.Sprintf("product %d deleted", id), nil
	case ActionDeleteAll:
		count, err := r.products.DeleteAll(ctx)
		if err != nil {
			return nil, err
		}
		return deleteAllMessage(count, "products"), nil
	case ActionGenerate:
		count, err := parseCount(args)
		if err != nil {
			return nil, err
		}
		return r.products.Generate(ctx, count, r.gen)
	default:
		return nil, fmt.Errorf("unhandled action %q", action)
	}
}

func (r *Runner) runCustomer(ctx context.Context, action Action, args []string) (any, error) {
	switch action {
	case ActionCreate:
		if len(args) != 4 {
			return nil, argError("Customer creation requires: name address phone contact_person")
		}
		return r.customers.Create(ctx, models.CreateCustomer{
			Name:          args[0],
			Address:       args[1],
			Phone:         args[2],
			ContactPerson: args[3],
		})
	case ActionGet:
		id, err := parseSingleID(action, args)
		if err != nil {
			return nil, err
		}
		return r.customers.Get(ctx, id)
	case ActionGetAll:
		skip, limit, err := parsePage(args)
		if err != nil {
			return nil, err
		}
		return r.customers.List(ctx, skip, limit)
	case ActionUpdate:
		if len(args) != 5 {
			return nil, argError("Customer update requires: id name address phone contact_person")
		}
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		return r.customers.Update(ctx, id, models.CreateCustomer{
			Name:          args[1],
			Address:       args[2],
			Phone:         args[3],
			ContactPerson: args[4],
		})
	case ActionDelete:
		id, err := parseSingleID(action, args)
		if err != nil {
			return nil, err
		}
		if err := r.customers.Delete(ctx, id); err != nil {
			return nil, err
		}
		return fmt.Sprintf("customer %d deleted", id), nil
	case ActionDeleteAll:
		count, err := r.customers.DeleteAll(ctx)
		if err != nil {
			return nil, err
		}
		return deleteAllMessage(count, "customers"), nil
	case ActionGenerate:
		count, err := parseCount(args)
		if err != nil {
			return nil, err
		}
		return r.customers.Generate(ctx, count, r.gen)
	default:
		return nil, fmt.Errorf("unhandled action %q", action)
	}
}

func (r *Runner) runPurchase(ctx context.Context, action Action, args []string) (any, error) {
	switch action {
	case ActionCreate:
		req, err := parsePurchaseFields(args)
		if err != nil {
			return nil, err
		}
		return r.purchases.Create(ctx, *req)
	case ActionGet:
		id, err := parseSingleID(action, args)
		if err != nil {
			return nil, err
		}
		return r.purchases.Get(ctx, id)
	case ActionGetAll:
		skip, limit, err := parsePage(args)
		if err != nil {
			return nil, err
		}
		return r.purchases.List(ctx, skip, limit)
	case ActionUpdate:
		if len(args) != 6 {
			return nil, argError("Purchase update requires: id product_id customer_id quantity delivery_date price_per_unit")
		}
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		req, err := parsePurchaseFields(args[1:])
		if err != nil {
			return nil, err
		}
		return r.purchases.Update(ctx, id, *req)
	case ActionDelete:
		id, err := parseSingleID(action, args)
		if err != nil {
			return nil, err
		}
		if err := r.purchases.Delete(ctx, id); err != nil {
			return nil, err
		}
		return fmt.Sprintf("purchase %d deleted", id), nil
	case ActionDeleteAll:
		count, err := r.purchases.DeleteAll(ctx)
		if err != nil {
			return nil, err
		}
		return deleteAllMessage(count, "purchases"), nil
	case ActionGenerate:
		count, err := parseCount(args)
		if err != nil {
			return nil, err
		}
		return r.purchases.Generate(ctx, count, r.gen)
	default:
		return nil, fmt.Errorf("unhandled action %q", action)
	}
}

func (r *Runner) runQuery(ctx context.Context, action Action, args []string) (any, error) {
	switch action {
	case ActionQueryProductsByManufacturer:
		if len(args) != 2 {
			return nil, argError("Query 1 requires: manufacturer unit")
		}
		return r.products.Filter(ctx, args[0], args[1])
	case ActionQueryCustomerPurchases:
		if len(args) != 1 {
			return nil, argError("Query 2 requires: customer_id")
		}
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		return r.purchases.ByCustomer(ctx, id)
	case ActionQueryUpdatePrice:
		if len(args) != 2 {
			return nil, argError("Query 3 requires: purchase_id new_price")
		}
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price: %s", args[1])
		}
		updated, err := r.purchases.UpdatePrice(ctx, id, price)
		if err != nil {
			return nil, err
		}
		if !updated {
			return fmt.Sprintf("purchase %d not updated: quantity is not above 10", id), nil
		}
		return fmt.Sprintf("purchase %d price updated", id), nil
	case ActionQuerySalesByProduct:
		if len(args) != 1 {
			return nil, argError("Query 4 requires: product_id")
		}
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		return r.purchases.ProductSales(ctx, id)
	default:
		return nil, fmt.Errorf("unhandled action %q", action)
	}
}

func (r *Runner) print(result any) {
	if result == nil {
		return
	}

	if s, ok := result.(string); ok {
		fmt.Fprintln(r.out, s)
		return
	}

	data, err := json.MarshalIndent(result, "", "    ")
	if err != nil {
		fmt.Fprintf(r.out, "Error executing command: %v\n", err)
		return
	}
	fmt.Fprintln(r.out, string(data))
}

func parsePurchaseFields(args []string) (*models.CreatePurchase, error) {
	if len(args) != 5 {
		return nil, argError("Purchase creation requires: product_id customer_id quantity delivery_date price_per_unit")
	}

	productID, err := parseID(args[0])
	if err != nil {
		return nil, err
	}
	customerID, err := parseID(args[1])
	if err != nil {
		return nil, err
	}
	quantity, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid quantity: %s", args[2])
	}
	deliveryDate, err := time.Parse(dateTimeLayout, args[3])
	if err != nil {
		return nil, fmt.Errorf("invalid date/time format: %s", args[3])
	}
	price, err := strconv.ParseFloat(args[4], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price: %s", args[4])
	}

	return &models.CreatePurchase{
		ProductID:    productID,
		CustomerID:   customerID,
		Quantity:     quantity,
		DeliveryDate: deliveryDate,
		PricePerUnit: price,
	}, nil
}

func parseSingleID(action Action, args []string) (int64, error) {
	if len(args) != 1 {
		return 0, argError(fmt.Sprintf("%s command requires exactly one argument (ID)", action))
	}
	return parseID(args[0])
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id: %s", arg)
	}
	return id, nil
}

func parseCount(args []string) (int, error) {
	if len(args) != 1 {
		return 0, argError("Generate command requires exactly one argument (number of items)")
	}
	count, err := strconv.Atoi(args[0])
	if err != nil || count <= 0 {
		return 0, fmt.Errorf("invalid count: %s", args[0])
	}
	return count, nil
}

func parsePage(args []string) (skip, limit int, err error) {
	skip, limit = 0, 100
	if len(args) > 2 {
		return 0, 0, argError("get-all accepts at most two arguments (skip, limit)")
	}
	if len(args) > 0 {
		if skip, err = strconv.Atoi(args[0]); err != nil {
			return 0, 0, fmt.Errorf("invalid skip: %s", args[0])
		}
	}
	if len(args) > 1 {
		if limit, err = strconv.Atoi(args[1]); err != nil {
			return 0, 0, fmt.Errorf("invalid limit: %s", args[1])
		}
	}
	return skip, limit, nil
}

func deleteAllMessage(count int64, what string) string {
	if count == 0 {
		return "nothing to delete"
	}
	return fmt.Sprintf("deleted %d %s", count, what)
}
