package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"grocery_admin/internal/api"
	"grocery_admin/internal/forms"
	"grocery_admin/internal/listing"
	"grocery_admin/internal/session"

	"go.uber.org/zap"
)

type console struct {
	opts   *Options
	logger *zap.Logger
	client *api.Client
	store  *session.Store

	products  *listing.Pager[api.Product]
	stocks    *listing.Pager[api.StockRow]
	lowStocks *listing.Pager[api.StockRow]
	customers *listing.Pager[api.Customer]
}

func newConsole(opts *Options, logger *zap.Logger, client *api.Client, store *session.Store) *console {
	c := &console{
		opts:   opts,
		logger: logger,
		client: client,
		store:  store,
	}
	c.products = listing.NewPager(client.ListProducts, logger,
		listing.WithPageSize[api.Product](opts.PageSize),
		listing.WithSearch[api.Product](client.SearchProducts))
	c.stocks = listing.NewPager(client.ListStocks, logger,
		listing.WithPageSize[api.StockRow](opts.PageSize))
	c.lowStocks = listing.NewPager(client.ListLowStock, logger,
		listing.WithPageSize[api.StockRow](opts.PageSize))
	c.customers = listing.NewPager(client.ListCustomers, logger,
		listing.WithPageSize[api.Customer](opts.PageSize))
	return c
}

func (c *console) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return nil
	}

	command := strings.ToLower(args[0])
	rest := args[1:]

	switch command {
	case "help":
		printHelp()
		return nil
	case "login":
		return c.login(ctx, rest)
	case "logout":
		return c.store.Clear()
	case "whoami":
		return c.whoami()
	case "products":
		return c.productsCommand(ctx, rest)
	case "categories":
		return c.categoriesCommand(ctx, rest)
	case "subcategories":
		return c.subcategoriesCommand(ctx, rest)
	case "orders":
		return c.ordersCommand(ctx, rest)
	case "customers":
		return c.customersCommand(ctx, rest)
	case "stocks":
		return c.stocksCommand(ctx, rest)
	case "notifications":
		return c.notificationsCommand(ctx, rest)
	case "delivery":
		return c.deliveryCommand(ctx, rest)
	case "content":
		return c.contentCommand(ctx, rest)
	case "reports":
		return c.reportsCommand(ctx, rest)
	case "admins":
		return c.adminsCommand(ctx, rest)
	default:
		return fmt.Errorf("unknown command %q (try 'help')", command)
	}
}

func (c *console) login(ctx context.Context, args []string) error {
	email := c.opts.Email
	if len(args) > 0 {
		email = args[0]
	}
	if email == "" {
		var err error
		email, err = promptInput("Email:")
		if err != nil {
			return err
		}
	}
	password := c.opts.Password
	if password == "" {
		var err error
		password, err = promptPassword("Password:")
		if err != nil {
			return err
		}
	}

	result, err := c.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	sess := session.FromLogin(email, result)
	if err := c.store.Save(sess); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Logged in as %s (superuser: %t)\n", sess.Email, sess.IsSuperuser)
	return nil
}

func (c *console) whoami() error {
	sess, err := c.store.Load()
	if err != nil {
		return err
	}
	if c.opts.JSON {
		return writeJSON(sess)
	}
	fmt.Fprintf(os.Stdout, "%s (superuser: %t)\n", sess.Email, sess.IsSuperuser)
	if len(sess.Permissions) > 0 {
		fmt.Fprintf(os.Stdout, "permissions: %s\n", strings.Join(sess.Permissions, ", "))
	}
	return nil
}

func (c *console) productsCommand(ctx context.Context, args []string) error {
	action, rest := splitAction(args, "list")

	switch action {
	case "list":
		page := parsePageArg(rest, c.products.Page())
		if err := c.products.LoadPage(ctx, page); err != nil {
			return err
		}
		return c.renderProducts()
	case "next":
		if !c.products.HasNext() {
			fmt.Fprintln(os.Stdout, "Already on the last page.")
			return nil
		}
		if err := c.products.LoadPage(ctx, c.products.Page()+1); err != nil {
			return err
		}
		return c.renderProducts()
	case "prev":
		if !c.products.HasPrev() {
			fmt.Fprintln(os.Stdout, "Already on the first page.")
			return nil
		}
		if err := c.products.LoadPage(ctx, c.products.Page()-1); err != nil {
			return err
		}
		return c.renderProducts()
	case "more":
		if err := c.products.LoadMore(ctx); err != nil {
			return err
		}
		return c.renderProducts()
	case "search":
		if err := c.products.Search(ctx, strings.Join(rest, " ")); err != nil {
			return err
		}
		return c.renderProducts()
	case "filter":
		return c.productFilter(rest)
	case "show":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		product, err := c.client.GetProduct(ctx, id)
		if err != nil {
			return err
		}
		return writeJSON(product)
	case "add":
		return c.addProduct(ctx)
	case "rm":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		ok, err := promptConfirm(fmt.Sprintf("Delete product %d?", id))
		if err != nil || !ok {
			return err
		}
		if err := c.client.DeleteProduct(ctx, id); err != nil {
			return err
		}
		c.products.RemoveItems(func(p api.Product) bool { return p.ID == id })
		fmt.Fprintln(os.Stdout, "Product deleted.")
		return nil
	default:
		return fmt.Errorf("unknown products action %q", action)
	}
}

// productFilter maintains the client-side predicates; the pagination
// labels keep showing the unfiltered server page.
func (c *console) productFilter(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: products filter popular|offer|instock|outofstock|category <id>|clear")
	}

	switch args[0] {
	case "popular":
		c.products.SetPredicate("flag", func(p api.Product) bool { return p.IsPopular })
	case "offer":
		c.products.SetPredicate("flag", func(p api.Product) bool { return p.IsOffer })
	case "instock":
		c.products.SetPredicate("stock", func(p api.Product) bool { return p.Available })
	case "outofstock":
		c.products.SetPredicate("stock", func(p api.Product) bool { return !p.Available })
	case "category":
		id, err := parseID(args[1:])
		if err != nil {
			return err
		}
		c.products.SetPredicate("category", func(p api.Product) bool { return p.Category == id })
	case "clear":
		c.products.ClearPredicates()
	default:
		return fmt.Errorf("unknown filter %q", args[0])
	}
	return c.renderProducts()
}

func (c *console) addProduct(ctx context.Context) error {
	form := forms.NewProductForm(c.client, c.logger,
		func(ctx context.Context) error { return c.products.Reload(ctx) },
		func(message string) { fmt.Fprintln(os.Stdout, message) })

	if err := promptProductForm(ctx, c.client, form); err != nil {
		return err
	}

	product, err := form.Submit(ctx)
	if err != nil {
		if errors.Is(err, forms.ErrInvalidForm) {
			printFieldErrors(form.Errors())
			return nil
		}
		if form.Message != "" {
			fmt.Fprintf(os.Stderr, "error: %s\n", form.Message)
			return nil
		}
		return err
	}
	fmt.Fprintf(os.Stdout, "Created product %d: %s\n", product.ID, product.Name)
	return nil
}

func (c *console) categoriesCommand(ctx context.Context, args []string) error {
	action, rest := splitAction(args, "list")

	switch action {
	case "list":
		categories, err := c.client.ListCategories(ctx)
		if err != nil {
			return err
		}
		return c.renderCategories(categories)
	case "add":
		form := forms.NewCategoryForm(c.client, c.logger, nil,
			func(message string) { fmt.Fprintln(os.Stdout, message) })
		name := strings.Join(rest, " ")
		if name == "" {
			var err error
			name, err = promptInput("Category name:")
			if err != nil {
				return err
			}
		}
		form.SetName(name)
		if _, err := form.Submit(ctx); err != nil {
			if errors.Is(err, forms.ErrInvalidForm) {
				printFieldErrors(form.Errors())
				return nil
			}
			if form.Message != "" {
				fmt.Fprintf(os.Stderr, "error: %s\n", form.Message)
				return nil
			}
			return err
		}
		return nil
	case "rm":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		ok, err := promptConfirm(fmt.Sprintf("Delete category %d?", id))
		if err != nil || !ok {
			return err
		}
		return c.client.DeleteCategory(ctx, id)
	default:
		return fmt.Errorf("unknown categories action %q", action)
	}
}

func (c *console) subcategoriesCommand(ctx context.Context, args []string) error {
	action, rest := splitAction(args, "list")

	switch action {
	case "list":
		if len(rest) > 0 {
			categoryID, err := parseID(rest)
			if err != nil {
				return err
			}
			subs, err := c.client.ListSubcategoriesByCategory(ctx, categoryID)
			if err != nil {
				return err
			}
			return c.renderSubcategories(subs)
		}
		subs, err := c.client.ListSubcategories(ctx)
		if err != nil {
			return err
		}
		return c.renderSubcategories(subs)
	case "add":
		form := forms.NewSubcategoryForm(c.client, c.logger, nil,
			func(message string) { fmt.Fprintln(os.Stdout, message) })
		if err := promptSubcategoryForm(form); err != nil {
			return err
		}
		if _, err := form.Submit(ctx); err != nil {
			if errors.Is(err, forms.ErrInvalidForm) {
				printFieldErrors(form.Errors())
				return nil
			}
			return err
		}
		return nil
	case "rm":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		return c.client.DeleteSubcategory(ctx, id)
	default:
		return fmt.Errorf("unknown subcategories action %q", action)
	}
}

func (c *console) ordersCommand(ctx context.Context, args []string) error {
	action, rest := splitAction(args, "list")

	switch action {
	case "list":
		orders, err := c.client.ListOrders(ctx)
		if err != nil {
			return err
		}
		return c.renderOrders(orders)
	case "range":
		if len(rest) < 2 {
			return errors.New("usage: orders range <from> <to> (YYYY-MM-DD)")
		}
		from, err := parseDate(rest[0])
		if err != nil {
			return fmt.Errorf("invalid from date: %w", err)
		}
		to, err := parseDate(rest[1])
		if err != nil {
			return fmt.Errorf("invalid to date: %w", err)
		}
		if to.Before(from) {
			return errors.New("to date must be after from date")
		}
		orders, err := c.client.FilterOrdersByDate(ctx, from, to)
		if err != nil {
			return err
		}
		return c.renderOrders(orders)
	case "show":
		if len(rest) < 2 {
			return errors.New("usage: orders show <userID> <orderID>")
		}
		userID, err := strconv.Atoi(rest[0])
		if err != nil {
			return fmt.Errorf("invalid user id %q", rest[0])
		}
		orderID, err := strconv.Atoi(rest[1])
		if err != nil {
			return fmt.Errorf("invalid order id %q", rest[1])
		}
		order, err := c.client.GetOrderDetails(ctx, userID, orderID)
		if err != nil {
			return err
		}
		return writeJSON(order)
	case "user":
		userID, err := parseID(rest)
		if err != nil {
			return err
		}
		orders, err := c.client.ListUserOrders(ctx, userID)
		if err != nil {
			return err
		}
		return c.renderOrders(orders)
	case "rm":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		ok, err := promptConfirm(fmt.Sprintf("Delete order %d?", id))
		if err != nil || !ok {
			return err
		}
		return c.client.DeleteOrder(ctx, id)
	default:
		return fmt.Errorf("unknown orders action %q", action)
	}
}

func (c *console) customersCommand(ctx context.Context, args []string) error {
	action, rest := splitAction(args, "list")

	switch action {
	case "list":
		page := parsePageArg(rest, c.customers.Page())
		if err := c.customers.LoadPage(ctx, page); err != nil {
			return err
		}
		return c.renderCustomers()
	case "next":
		if !c.customers.HasNext() {
			fmt.Fprintln(os.Stdout, "Already on the last page.")
			return nil
		}
		if err := c.customers.LoadPage(ctx, c.customers.Page()+1); err != nil {
			return err
		}
		return c.renderCustomers()
	case "rm":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		ok, err := promptConfirm(fmt.Sprintf("Delete customer %d?", id))
		if err != nil || !ok {
			return err
		}
		if err := c.client.DeleteCustomer(ctx, id); err != nil {
			return err
		}
		c.customers.RemoveItems(func(cust api.Customer) bool { return cust.ID == id })
		return nil
	case "notify":
		if len(rest) < 2 {
			return errors.New("usage: customers notify <id> <message>")
		}
		id, err := strconv.Atoi(rest[0])
		if err != nil {
			return fmt.Errorf("invalid customer id %q", rest[0])
		}
		form := forms.NewNotificationForm(c.client, c.logger,
			func(message string) { fmt.Fprintln(os.Stdout, message) })
		form.CustomerID = id
		form.Message = strings.Join(rest[1:], " ")
		return form.Submit(ctx)
	default:
		return fmt.Errorf("unknown customers action %q", action)
	}
}

func (c *console) stocksCommand(ctx context.Context, args []string) error {
	action, rest := splitAction(args, "list")

	switch action {
	case "list":
		page := parsePageArg(rest, c.stocks.Page())
		if err := c.stocks.LoadPage(ctx, page); err != nil {
			return err
		}
		return c.renderStocks(c.stocks)
	case "low":
		page := parsePageArg(rest, c.lowStocks.Page())
		if err := c.lowStocks.LoadPage(ctx, page); err != nil {
			return err
		}
		return c.renderStocks(c.lowStocks)
	case "expand":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		c.stocks.ToggleExpanded(id)
		return c.renderStocks(c.stocks)
	default:
		return fmt.Errorf("unknown stocks action %q", action)
	}
}

func (c *console) notificationsCommand(ctx context.Context, args []string) error {
	action, rest := splitAction(args, "list")

	switch action {
	case "list":
		notifications, err := c.client.ListNotifications(ctx)
		if err != nil {
			return err
		}
		return c.renderNotifications(notifications)
	case "read":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		return c.client.MarkNotificationRead(ctx, id)
	case "rm":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		return c.client.DeleteNotification(ctx, id)
	case "send":
		form := forms.NewNotificationForm(c.client, c.logger,
			func(message string) { fmt.Fprintln(os.Stdout, message) })
		form.Message = strings.Join(rest, " ")
		if form.Message == "" {
			var err error
			form.Message, err = promptInput("Message:")
			if err != nil {
				return err
			}
		}
		if err := form.Submit(ctx); err != nil {
			if errors.Is(err, forms.ErrInvalidForm) {
				printFieldErrors(form.Errors())
				return nil
			}
			return err
		}
		return nil
	default:
		return fmt.Errorf("unknown notifications action %q", action)
	}
}

func (c *console) deliveryCommand(ctx context.Context, args []string) error {
	action, _ := splitAction(args, "list")

	switch action {
	case "list":
		boys, err := c.client.ListDeliveryBoys(ctx)
		if err != nil {
			return err
		}
		return c.renderDeliveryBoys(boys)
	case "add":
		form := forms.NewDeliveryBoyForm(c.client, c.logger, nil,
			func(message string) { fmt.Fprintln(os.Stdout, message) })
		if err := promptDeliveryBoyForm(form); err != nil {
			return err
		}
		if _, err := form.Submit(ctx); err != nil {
			if errors.Is(err, forms.ErrInvalidForm) {
				printFieldErrors(form.Errors())
				return nil
			}
			if form.Message != "" {
				fmt.Fprintf(os.Stderr, "error: %s\n", form.Message)
				return nil
			}
			return err
		}
		return nil
	default:
		return fmt.Errorf("unknown delivery action %q", action)
	}
}

func (c *console) contentCommand(ctx context.Context, args []string) error {
	action, _ := splitAction(args, "carousel")

	switch action {
	case "carousel":
		images, err := c.client.ListCarouselImages(ctx)
		if err != nil {
			return err
		}
		return writeJSON(images)
	case "posters":
		posters, err := c.client.ListPosters(ctx)
		if err != nil {
			return err
		}
		return writeJSON(posters)
	case "home":
		images, err := c.client.ListHomeImages(ctx)
		if err != nil {
			return err
		}
		return writeJSON(images)
	default:
		return fmt.Errorf("unknown content action %q", action)
	}
}

func (c *console) reportsCommand(ctx context.Context, args []string) error {
	action, _ := splitAction(args, "revenue")

	switch action {
	case "revenue":
		revenue, err := c.client.StockRevenue(ctx)
		if err != nil {
			return err
		}
		if c.opts.JSON {
			return writeJSON(revenue)
		}
		fmt.Fprintf(os.Stdout, "Stock quantity: %d\n", revenue.TotalStockQuantity)
		fmt.Fprintf(os.Stdout, "Invested:       %.2f\n", revenue.TotalAmountInvested)
		fmt.Fprintf(os.Stdout, "Received:       %.2f\n", revenue.TotalAmountReceived)
		fmt.Fprintf(os.Stdout, "Profit:         %.2f\n", revenue.Profit)
		return nil
	case "payments":
		payments, err := c.client.PaymentTotals(ctx)
		if err != nil {
			return err
		}
		return c.renderPayments(payments)
	default:
		return fmt.Errorf("unknown reports action %q", action)
	}
}

func (c *console) adminsCommand(ctx context.Context, args []string) error {
	action, rest := splitAction(args, "list")

	switch action {
	case "list":
		page := parsePageArg(rest, 1)
		admins, err := c.client.ListSubAdmins(ctx, page, c.opts.PageSize)
		if err != nil {
			return err
		}
		return writeJSON(admins)
	case "add-sub":
		payload, err := promptSubAdmin()
		if err != nil {
			return err
		}
		admin, err := c.client.CreateSubAdmin(ctx, payload)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Created sub-admin %d: %s\n", admin.ID, admin.Email)
		return nil
	default:
		return fmt.Errorf("unknown admins action %q", action)
	}
}

func splitAction(args []string, fallback string) (string, []string) {
	if len(args) == 0 {
		return fallback, nil
	}
	return strings.ToLower(args[0]), args[1:]
}

func parsePageArg(args []string, fallback int) int {
	if len(args) == 0 {
		return fallback
	}
	page, err := strconv.Atoi(args[0])
	if err != nil || page < 1 {
		return fallback
	}
	return page
}

func parseID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, errors.New("an id argument is required")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

func parseDate(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, time.Local)
}

func friendlyError(err error) string {
	switch {
	case errors.Is(err, session.ErrNoSession):
		return "Not logged in. Run 'login' first."
	case errors.Is(err, api.ErrUnauthorized):
		return "Not authorized: wrong credentials or missing permissions."
	case errors.Is(err, api.ErrNotFound):
		return "Not found."
	case errors.Is(err, api.ErrNetwork):
		return "Network error. Please try again."
	default:
		if err == nil {
			return ""
		}
		return api.ErrorMessage(err)
	}
}

func printFieldErrors(errs forms.FieldErrors) {
	for field, message := range errs {
		fmt.Fprintf(os.Stderr, "%s: %s\n", field, message)
	}
}

func printHelp() {
	fmt.Fprint(os.Stdout, `Commands:
  login [email]                      authenticate and persist the session
  logout | whoami
  products list [page] | next | prev | more | search <q> | show <id> | add | rm <id>
  products filter popular|offer|instock|outofstock|category <id>|clear
  categories list | add [name] | rm <id>
  subcategories list [categoryID] | add | rm <id>
  orders list | range <from> <to> | show <userID> <orderID> | user <id> | rm <id>
  customers list [page] | next | rm <id> | notify <id> <message>
  stocks list [page] | low [page] | expand <id>
  notifications list | read <id> | rm <id> | send [message]
  delivery list | add
  content carousel | posters | home
  reports revenue | payments
  admins list [page] | add-sub
`)
}
