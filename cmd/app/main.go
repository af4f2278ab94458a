package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"futures_go/internal/app"
	"futures_go/internal/domain"
	"futures_go/internal/service"
)

const usage = `Usage: futures-go [command] [flags]

Commands:
  place    Submit an order (default). Prompts interactively when no
           order flags are given.
  status   Query an order (-symbol, -order-id)
  cancel   Cancel an order (-symbol, -order-id)
  history  Show recent order journal entries (-symbol to filter;
           works without credentials)

Flags:
  -config      Config file path (default configs/config.yaml)
  -symbol      Trading pair, e.g. BTCUSDT
  -side        buy | sell
  -type        market | limit | stop-limit
  -qty         Order quantity
  -price       Limit price (limit / stop-limit)
  -stop-price  Trigger price (stop-limit)
  -tif         gtc | ioc (limit only, default gtc)
  -order-id    Exchange order id (status / cancel)
  -timeout     Per-call timeout (default 15s)

Credentials come from BINANCE_API_KEY / BINANCE_API_SECRET (or .env);
TESTNET=false switches to the production endpoint.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	verb := "place"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		verb = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet("futures-go", flag.ExitOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }

	configPath := fs.String("config", "configs/config.yaml", "config file path")
	symbol := fs.String("symbol", "", "trading pair")
	side := fs.String("side", "", "buy or sell")
	orderType := fs.String("type", "", "market, limit or stop-limit")
	qty := fs.String("qty", "", "order quantity")
	price := fs.String("price", "", "limit price")
	stopPrice := fs.String("stop-price", "", "trigger price")
	tif := fs.String("tif", "", "time in force (gtc or ioc)")
	orderID := fs.Int64("order-id", 0, "exchange order id")
	timeout := fs.Duration("timeout", 15*time.Second, "per-call timeout")
	fs.Parse(args)

	bootstrap := app.NewBootstrap()
	var initErr error
	if verb == "history" {
		// History reads the local journal only; no credentials needed.
		initErr = bootstrap.InitializeLocal(*configPath)
	} else {
		initErr = bootstrap.Initialize(*configPath)
	}
	if initErr != nil {
		fmt.Fprintf(os.Stderr, "startup failed: %v\n", initErr)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	switch verb {
	case "place":
		raw := service.RawOrder{
			Symbol:      *symbol,
			Side:        *side,
			Type:        *orderType,
			Quantity:    *qty,
			Price:       *price,
			StopPrice:   *stopPrice,
			TimeInForce: *tif,
		}
		if raw.Symbol == "" && raw.Side == "" && raw.Type == "" && raw.Quantity == "" {
			raw = promptOrder(os.Stdin)
		}
		return placeOrder(ctx, bootstrap, raw)

	case "status":
		if *symbol == "" || *orderID == 0 {
			fmt.Fprintln(os.Stderr, "status requires -symbol and -order-id")
			return 1
		}
		result, err := bootstrap.Gateway.Status(ctx, strings.ToUpper(*symbol), *orderID)
		if err != nil {
			return fail(err)
		}
		printResult("Order status", result)
		return 0

	case "cancel":
		if *symbol == "" || *orderID == 0 {
			fmt.Fprintln(os.Stderr, "cancel requires -symbol and -order-id")
			return 1
		}
		result, err := bootstrap.Gateway.Cancel(ctx, strings.ToUpper(*symbol), *orderID)
		if err != nil {
			return fail(err)
		}
		printResult("Cancel confirmed", result)
		return 0

	case "history":
		return showHistory(bootstrap, *symbol)

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", verb)
		fs.Usage()
		return 1
	}
}

func placeOrder(ctx context.Context, bootstrap *app.Bootstrap, raw service.RawOrder) int {
	req, err := service.ValidateOrder(raw)
	if err != nil {
		// Validation failures never reach the network; log them here.
		oe := domain.AsOrderError(err)
		slog.Error("validation failed", "kind", oe.Kind, "message", oe.Message)
		fmt.Fprintf(os.Stderr, "invalid order: %s\n", oe.Message)
		return 1
	}

	result, err := bootstrap.Gateway.Submit(ctx, *req)
	if err != nil {
		return fail(err)
	}

	printResult("Order accepted", result)
	return 0
}

// fail prints the one user-visible message for a gateway error. The
// gateway has already logged and journaled it.
func fail(err error) int {
	oe := domain.AsOrderError(err)
	switch oe.Kind {
	case domain.KindAPI:
		fmt.Fprintf(os.Stderr, "exchange rejected the request (code %d): %s\n", oe.Code, oe.Message)
	case domain.KindNetwork:
		fmt.Fprintf(os.Stderr, "network failure: %s\n", oe.Message)
	default:
		fmt.Fprintf(os.Stderr, "request failed: %s\n", oe.Message)
	}
	return 1
}

func printResult(header string, r *domain.OrderResult) {
	fmt.Printf("%s\n", header)
	fmt.Printf("  Order ID:  %d\n", r.OrderID)
	fmt.Printf("  Symbol:    %s\n", r.Symbol)
	fmt.Printf("  Side:      %s\n", r.Side)
	fmt.Printf("  Type:      %s\n", r.Type)
	fmt.Printf("  Quantity:  %s\n", r.Quantity)
	if !r.Price.IsZero() {
		fmt.Printf("  Price:     %s\n", r.Price)
	}
	if !r.StopPrice.IsZero() {
		fmt.Printf("  Stop:      %s\n", r.StopPrice)
	}
	if r.TimeInForce != "" {
		fmt.Printf("  TIF:       %s\n", r.TimeInForce)
	}
	fmt.Printf("  Status:    %s\n", r.Status)
}

func showHistory(bootstrap *app.Bootstrap, symbol string) int {
	if bootstrap.Journal == nil {
		fmt.Fprintln(os.Stderr, "order journal unavailable")
		return 1
	}

	var events []domain.OrderEvent
	var err error
	if symbol != "" {
		events, err = bootstrap.Journal.EventsForSymbol(strings.ToUpper(symbol), 20)
	} else {
		events, err = bootstrap.Journal.RecentEvents(20)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "history read failed: %v\n", err)
		return 1
	}
	if len(events) == 0 {
		fmt.Println("no recorded orders")
		return 0
	}
	for _, ev := range events {
		fmt.Printf("%s  %-8s %-6s %-10s #%d  %s\n",
			ev.At.Format(time.RFC3339), ev.Stage, ev.Operation, ev.Symbol, ev.OrderID, ev.Detail)
	}
	return 0
}

// promptOrder collects order fields interactively, mirroring the flag
// set. Price prompts appear only for the types that need them.
func promptOrder(in *os.File) service.RawOrder {
	reader := bufio.NewReader(in)
	raw := service.RawOrder{}

	raw.Symbol = prompt(reader, "Symbol (e.g. BTCUSDT): ")
	raw.Side = prompt(reader, "Side (buy/sell): ")
	raw.Type = prompt(reader, "Type (market/limit/stop-limit): ")
	raw.Quantity = prompt(reader, "Quantity: ")

	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw.Type), "_", "-")) {
	case "limit":
		raw.Price = prompt(reader, "Price: ")
		raw.TimeInForce = prompt(reader, "Time in force (gtc/ioc) [gtc]: ")
	case "stop-limit":
		raw.Price = prompt(reader, "Limit price: ")
		raw.StopPrice = prompt(reader, "Stop price: ")
	}

	return raw
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
