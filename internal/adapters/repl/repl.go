package repl

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/app"
	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/core"
)

// Run starts the interactive REPL loop. All commands are slash-prefixed and
// dispatch deterministically; /insight is the only command that calls the AI
// agent.
func Run(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader) {
	fmt.Println("Stock Ledger")
	fmt.Println("Type /help for commands.")
	fmt.Println(strings.Repeat("-", 70))

	errExit := fmt.Errorf("exit")

	dispatchSlash := func(input string) error {
		tokens := strings.Fields(strings.TrimPrefix(input, "/"))
		if len(tokens) == 0 {
			return nil
		}
		cmd := strings.ToLower(tokens[0])
		args := tokens[1:]

		switch cmd {
		case "stock":
			location := ""
			if len(args) > 0 {
				location = args[0]
			}
			result, err := svc.GetStock(ctx, location)
			if err != nil {
				return err
			}
			printStock(result, location)

		case "catalog", "products":
			result, err := svc.GetCatalog(ctx)
			if err != nil {
				return err
			}
			printCatalog(result)

		case "kinds":
			printTransferKinds()

		case "transfer":
			if len(args) < 3 {
				fmt.Println("Usage: /transfer <kind> <sku> <amount> [shift]")
				fmt.Println("  Type /kinds for the list of transfer kinds.")
				return nil
			}
			amount, err := strconv.Atoi(args[2])
			if err != nil {
				fmt.Printf("Invalid amount: %s\n", args[2])
				return nil
			}
			shift := ""
			if len(args) >= 4 {
				shift = args[3]
			}
			result, err := svc.ExecuteTransfer(ctx, core.TransferRequest{
				ProductID: args[1],
				Amount:    amount,
				Kind:      core.TransferKind(args[0]),
				Shift:     shift,
			})
			if err != nil {
				return err
			}
			printMovement(result)

		case "condemn":
			if len(args) < 3 {
				fmt.Println("Usage: /condemn <sku> <source-location> <amount>")
				return nil
			}
			amount, err := strconv.Atoi(args[2])
			if err != nil {
				fmt.Printf("Invalid amount: %s\n", args[2])
				return nil
			}
			result, err := svc.MarkUnfit(ctx, app.CondemnRequest{
				ProductID: args[0],
				Source:    core.Location(args[1]),
				Amount:    amount,
			})
			if err != nil {
				return err
			}
			printMovement(result)

		case "destroy":
			if len(args) < 2 {
				fmt.Println("Usage: /destroy <sku> <amount>")
				return nil
			}
			amount, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Printf("Invalid amount: %s\n", args[1])
				return nil
			}
			result, err := svc.ExecuteDestruction(ctx, app.CondemnRequest{ProductID: args[0], Amount: amount})
			if err != nil {
				return err
			}
			printMovement(result)

		case "restore":
			if len(args) < 2 {
				fmt.Println("Usage: /restore <sku> <amount>")
				return nil
			}
			amount, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Printf("Invalid amount: %s\n", args[1])
				return nil
			}
			result, err := svc.RestoreFromCondemned(ctx, app.CondemnRequest{ProductID: args[0], Amount: amount})
			if err != nil {
				return err
			}
			printMovement(result)

		case "repair-done":
			if len(args) < 2 {
				fmt.Println("Usage: /repair-done <sku> <amount>")
				return nil
			}
			amount, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Printf("Invalid amount: %s\n", args[1])
				return nil
			}
			result, err := svc.FinishRepair(ctx, app.CondemnRequest{ProductID: args[0], Amount: amount})
			if err != nil {
				return err
			}
			printMovement(result)

		case "forecast":
			scope := core.ScopeCombined
			horizon := core.HorizonOneWeek
			if len(args) > 0 {
				scope = core.ForecastScope(args[0])
			}
			if len(args) > 1 {
				horizon = core.Horizon(args[1])
			}
			result, err := svc.GetForecast(ctx, scope, horizon)
			if err != nil {
				return err
			}
			printForecast(result)

		case "history":
			limit := 20
			if len(args) > 0 {
				v, err := strconv.Atoi(args[0])
				if err != nil || v < 0 {
					fmt.Printf("Invalid limit: %s\n", args[0])
					return nil
				}
				limit = v
			}
			result, err := svc.GetTransactions(ctx, limit)
			if err != nil {
				return err
			}
			printHistory(result)

		case "sync":
			if len(args) < 1 {
				fmt.Println("Usage: /sync push|pull")
				return nil
			}
			switch strings.ToLower(args[0]) {
			case "push":
				if err := svc.SyncPush(ctx); err != nil {
					return err
				}
				fmt.Println("Snapshot pushed to the sheet endpoint.")
			case "pull":
				result, err := svc.SyncPull(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("Pulled %d stock records and %d ledger entries.\n",
					result.StockRecords, result.LedgerSize)
			default:
				fmt.Println("Usage: /sync push|pull")
			}

		case "insight":
			horizon := core.HorizonOneWeek
			if len(args) > 0 {
				horizon = core.Horizon(args[0])
			}
			fmt.Println("[AI] Assessing forecast...")
			insight, err := svc.GetInsight(ctx, horizon)
			if err != nil {
				return err
			}
			printInsight(insight)

		case "help", "h":
			printHelp()

		case "exit", "quit", "e", "q":
			return errExit

		default:
			fmt.Printf("Unknown command: /%s  (type /help for all commands)\n", cmd)
		}
		return nil
	}

	for {
		fmt.Print("\n> ")
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !strings.HasPrefix(input, "/") {
			fmt.Println("Commands start with a slash. Type /help for the list.")
			continue
		}

		if err := dispatchSlash(input); err != nil {
			if err == errExit {
				fmt.Println("Goodbye!")
				break
			}
			fmt.Printf("Error: %v\n", err)
		}
	}
}
