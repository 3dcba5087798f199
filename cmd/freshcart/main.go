package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/freshcart/freshcart-go/config"
	"github.com/freshcart/freshcart-go/internal/api"
	"github.com/freshcart/freshcart-go/internal/model"
	"github.com/freshcart/freshcart-go/internal/store"
	"github.com/freshcart/freshcart-go/internal/tokenstore"
	"github.com/freshcart/freshcart-go/pkg/logger"
)

func main() {
	// 1. Load configuration
	_ = godotenv.Load() // .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize logger
	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer appLogger.Sync()

	// 3. Open the persisted token store
	if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0o700); err != nil {
		appLogger.Fatal("could not create state directory", zap.Error(err))
	}
	tokens, err := tokenstore.Open(cfg.Storage.Path)
	if err != nil {
		appLogger.Fatal("could not open token store", zap.Error(err))
	}
	defer tokens.Close()

	// 4. Wire the client and the state tree. The token holder is created
	// first so the client gets its read-only accessor up front.
	holder := store.NewTokenHolder()
	cli := api.NewClient(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: time.Duration(cfg.API.Timeout) * time.Second,
	}, holder, appLogger)
	st := store.New(cli, holder, tokens, appLogger)

	// 5. Cold-start bootstrap: restore the persisted token, if any
	if token, err := st.Auth.LoadStoredToken(); err == nil && token != "" {
		appLogger.Info("session restored from stored token")
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	if err := run(context.Background(), st, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, st *store.Store, cmd string, args []string) error {
	switch cmd {
	case "register":
		if len(args) < 5 {
			return fmt.Errorf("usage: register <email> <password> <first> <last> <phone>")
		}
		user, err := st.Auth.Register(ctx, api.RegisterRequest{
			Email:       args[0],
			Password:    args[1],
			FirstName:   args[2],
			LastName:    args[3],
			PhoneNumber: args[4],
			Role:        model.RoleUser,
		})
		if err != nil {
			return err
		}
		fmt.Printf("registered %s (%s)\n", user.Email, user.Role)
		return nil

	case "login":
		if len(args) < 2 {
			return fmt.Errorf("usage: login <email> <password>")
		}
		user, err := st.Auth.Login(ctx, api.LoginRequest{Email: args[0], Password: args[1]})
		if err != nil {
			return err
		}
		fmt.Printf("signed in as %s %s (%s)\n", user.FirstName, user.LastName, user.Role)
		return nil

	case "logout":
		st.Auth.Logout()
		fmt.Println("signed out")
		return nil

	case "whoami":
		auth := st.Auth.State()
		switch {
		case auth.User != nil:
			fmt.Printf("%s %s <%s> (%s)\n", auth.User.FirstName, auth.User.LastName, auth.User.Email, auth.User.Role)
		case auth.Token != "":
			fmt.Println("signed in, profile unknown (restored session)")
		default:
			fmt.Println("not signed in")
		}
		return nil

	case "categories":
		list, err := st.Category.FetchAll(ctx)
		if err != nil {
			return err
		}
		for _, c := range list {
			fmt.Printf("%d\t%s\t%s\n", c.CategoryID, c.Name, c.Description)
		}
		return nil

	case "category-add":
		if len(args) < 2 {
			return fmt.Errorf("usage: category-add <name> <description> [imagePath]")
		}
		up, err := readUpload(args, 2)
		if err != nil {
			return err
		}
		cat, err := st.Category.Create(ctx, api.CategoryInput{Name: args[0], Description: args[1], IsActive: true}, up)
		if err != nil {
			return err
		}
		fmt.Printf("created category %d\n", cat.CategoryID)
		return nil

	case "category-rm":
		id, err := parseID(args, "category-rm <id>")
		if err != nil {
			return err
		}
		if err := st.Category.Remove(ctx, id); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil

	case "subcategories":
		list, err := st.SubCategory.FetchAll(ctx)
		if err != nil {
			return err
		}
		for _, sc := range list {
			fmt.Printf("%d\t%s\t(in %s)\n", sc.SubCategoryID, sc.Name, sc.CategoryName)
		}
		return nil

	case "subcategory-add":
		if len(args) < 2 {
			return fmt.Errorf("usage: subcategory-add <name> <categoryId> [imagePath]")
		}
		categoryID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("bad category id %q", args[1])
		}
		up, err := readUpload(args, 2)
		if err != nil {
			return err
		}
		sc, err := st.SubCategory.Create(ctx, api.SubCategoryInput{Name: args[0], CategoryID: categoryID, IsActive: true}, up)
		if err != nil {
			return err
		}
		fmt.Printf("created subcategory %d\n", sc.SubCategoryID)
		return nil

	case "subcategory-rm":
		id, err := parseID(args, "subcategory-rm <id>")
		if err != nil {
			return err
		}
		if err := st.SubCategory.Remove(ctx, id); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil

	case "products":
		list, err := st.Product.FetchAll(ctx)
		if err != nil {
			return err
		}
		for _, p := range list {
			fmt.Printf("%d\t%s\t%.2f/%s\tstock=%d\n", p.ProductID, p.Name, p.Price, p.Unit, p.StockQuantity)
		}
		return nil

	case "product-add":
		if len(args) < 5 {
			return fmt.Errorf("usage: product-add <name> <price> <stock> <unit> <subCategoryId> [imagePath]")
		}
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("bad price %q", args[1])
		}
		stock, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("bad stock %q", args[2])
		}
		subCategoryID, err := strconv.ParseInt(args[4], 10, 64)
		if err != nil {
			return fmt.Errorf("bad subcategory id %q", args[4])
		}
		up, err := readUpload(args, 5)
		if err != nil {
			return err
		}
		p, err := st.Product.Create(ctx, api.ProductInput{
			Name:          args[0],
			Price:         price,
			StockQuantity: stock,
			Unit:          args[3],
			SubCategoryID: subCategoryID,
			IsAvailable:   true,
		}, up)
		if err != nil {
			return err
		}
		fmt.Printf("created product %d\n", p.ProductID)
		return nil

	case "product-rm":
		id, err := parseID(args, "product-rm <id>")
		if err != nil {
			return err
		}
		if err := st.Product.Remove(ctx, id); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil

	case "cart":
		cart, err := st.Cart.Fetch(ctx)
		if err != nil {
			return err
		}
		printCart(cart)
		return nil

	case "cart-add":
		if len(args) < 2 {
			return fmt.Errorf("usage: cart-add <productId> <quantity>")
		}
		productID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad product id %q", args[0])
		}
		qty, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bad quantity %q", args[1])
		}
		cart, err := st.Cart.AddItem(ctx, productID, qty)
		if err != nil {
			return err
		}
		printCart(cart)
		return nil

	case "cart-set":
		if len(args) < 2 {
			return fmt.Errorf("usage: cart-set <cartItemId> <quantity>")
		}
		itemID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad cart item id %q", args[0])
		}
		qty, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bad quantity %q", args[1])
		}
		// Zero means remove: the store forwards quantity verbatim, so the
		// substitution happens here, at the caller.
		if qty == 0 {
			cart, err := st.Cart.RemoveItem(ctx, itemID)
			if err != nil {
				return err
			}
			printCart(cart)
			return nil
		}
		cart, err := st.Cart.UpdateItemQuantity(ctx, itemID, qty)
		if err != nil {
			return err
		}
		printCart(cart)
		return nil

	case "cart-rm":
		id, err := parseID(args, "cart-rm <cartItemId>")
		if err != nil {
			return err
		}
		cart, err := st.Cart.RemoveItem(ctx, id)
		if err != nil {
			return err
		}
		printCart(cart)
		return nil

	case "orders":
		list, err := st.Order.FetchMyOrders(ctx)
		if err != nil {
			return err
		}
		for _, o := range list {
			fmt.Printf("%d\t%s\t%.2f\t%s\n", o.OrderID, o.Status, o.FinalAmount, o.CreatedAt)
		}
		return nil

	case "order":
		id, err := parseID(args, "order <id>")
		if err != nil {
			return err
		}
		o, err := st.Order.FetchOrder(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("order %d: %s, %d items, total %.2f + %.2f delivery = %.2f\n",
			o.OrderID, o.Status, len(o.Items), o.TotalAmount, o.DeliveryCharge, o.FinalAmount)
		return nil

	case "order-place":
		if len(args) < 2 {
			return fmt.Errorf("usage: order-place <addressId> <paymentMethod>")
		}
		addressID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad address id %q", args[0])
		}
		o, err := st.Order.PlaceOrder(ctx, api.PlaceOrderRequest{
			AddressID:     &addressID,
			PaymentMethod: model.PaymentMethod(args[1]),
		})
		if err != nil {
			return err
		}
		fmt.Printf("order %d placed, %.2f to pay\n", o.OrderID, o.FinalAmount)
		return nil

	case "pay":
		if len(args) < 1 {
			return fmt.Errorf("usage: pay <orderId> [transactionId]")
		}
		orderID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad order id %q", args[0])
		}
		txn := ""
		if len(args) > 1 {
			txn = args[1]
		}
		ack, err := st.Order.ConfirmPayment(ctx, orderID, txn)
		if err != nil {
			return err
		}
		fmt.Println(ack)
		return nil

	case "addresses":
		list, err := st.Address.FetchAll(ctx)
		if err != nil {
			return err
		}
		for _, a := range list {
			mark := " "
			if a.IsDefault {
				mark = "*"
			}
			fmt.Printf("%s %d\t%s, %s, %s %s\n", mark, a.AddressID, a.AddressLine1, a.City, a.State, a.Pincode)
		}
		return nil

	case "address-add":
		if len(args) < 6 {
			return fmt.Errorf("usage: address-add <fullName> <phone> <line1> <city> <state> <pincode>")
		}
		addr, err := st.Address.Create(ctx, api.AddressInput{
			FullName:     args[0],
			PhoneNumber:  args[1],
			AddressLine1: args[2],
			City:         args[3],
			State:        args[4],
			Pincode:      args[5],
		}, nil)
		if err != nil {
			return err
		}
		fmt.Printf("saved address %d\n", addr.AddressID)
		return nil

	case "address-rm":
		id, err := parseID(args, "address-rm <id>")
		if err != nil {
			return err
		}
		if err := st.Address.Remove(ctx, id); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil

	case "address-default":
		id, err := parseID(args, "address-default <id>")
		if err != nil {
			return err
		}
		return st.Address.SetDefault(ctx, id)

	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func printCart(cart *model.Cart) {
	if cart == nil {
		fmt.Println("cart is empty")
		return
	}
	for _, item := range cart.Items {
		fmt.Printf("%d\t%s\t%d x %.2f = %.2f\n",
			item.CartItemID, item.ProductName, item.Quantity, item.PriceAtTime, item.Subtotal)
	}
	fmt.Printf("total: %.2f (%d items)\n", cart.TotalAmount, cart.TotalItems)
}

func parseID(args []string, use string) (int64, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("usage: %s", use)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad id %q", args[0])
	}
	return id, nil
}

func readUpload(args []string, idx int) (*api.Upload, error) {
	if len(args) <= idx {
		return nil, nil
	}
	data, err := os.ReadFile(args[idx])
	if err != nil {
		return nil, err
	}
	return &api.Upload{
		FileName:    filepath.Base(args[idx]),
		ContentType: "image/jpeg",
		Data:        data,
	}, nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `freshcart <command> [args]

  register <email> <password> <first> <last> <phone>
  login <email> <password>
  logout | whoami
  categories | category-add <name> <desc> [image] | category-rm <id>
  subcategories | subcategory-add <name> <categoryId> [image] | subcategory-rm <id>
  products | product-add <name> <price> <stock> <unit> <subCatId> [image] | product-rm <id>
  cart | cart-add <productId> <qty> | cart-set <itemId> <qty> | cart-rm <itemId>
  orders | order <id> | order-place <addressId> <method> | pay <orderId> [txn]
  addresses | address-add ... | address-rm <id> | address-default <id>`)
}
