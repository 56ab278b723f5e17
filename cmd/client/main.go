package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/giansalex/cw-lockbox/client"
	"github.com/giansalex/cw-lockbox/types"
)

const (
	defaultAddress = "localhost:8080"
	defaultTimeout = 5 * time.Second
)

// Command-line flags
var (
	address = flag.String("address", defaultAddress, "Lockbox server address")
	caller  = flag.String("caller", "", "Caller identity for create, release and cancel")
)

func main() {
	flag.Usage = showUsage
	flag.Parse()

	// Ensures command (create, release...) is provided
	if flag.NArg() < 1 {
		showUsage()
		os.Exit(1)
	}
	command := flag.Arg(0)
	args := flag.Args()[1:]

	lbClient, err := createClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating client: %v\n", err)
		os.Exit(1)
	}
	defer lbClient.Close()

	switch command {
	case "create":
		handleCreateCommand(args, lbClient)
	case "release":
		handleReleaseCommand(args, lbClient)
	case "cancel":
		handleCancelCommand(args, lbClient)
	case "get":
		handleGetCommand(args, lbClient)
	case "list-owner":
		handleListCommand(args, lbClient, true)
	case "list-recipient":
		handleListCommand(args, lbClient, false)
	case "help":
		showUsage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		showUsage()
		os.Exit(1)
	}
}

// Creates a new lockbox client
func createClient() (client.LockboxClient, error) {
	cfg := client.DefaultClientConfig()
	cfg.Address = *address

	lbClient, err := client.NewLockboxClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", *address, err)
	}
	return lbClient, nil
}

func requireCaller(commandName string) types.PartyID {
	if *caller == "" {
		fmt.Fprintf(os.Stderr, "-caller is required for the %s command\n", commandName)
		os.Exit(1)
	}
	return types.PartyID(*caller)
}

func handleCreateCommand(args []string, lbClient client.LockboxClient) {
	createCmd := flag.NewFlagSet("create", flag.ExitOnError)
	recipient := createCmd.String("recipient", "", "Recipient entitled to the funds on release")
	token := createCmd.String("token", "", "Token denomination to custody")
	amount := createCmd.Uint64("amount", 0, "Amount in the token's smallest unit")
	releaseAfter := createCmd.Duration("release-after", 0, "Release becomes possible this long from now")
	releaseHeight := createCmd.Uint64("release-height", 0, "Release becomes possible at this block height")
	createCmd.Parse(args)

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	req := &client.CreateLockRequest{
		Caller:        requireCaller("create"),
		Recipient:     types.PartyID(*recipient),
		Token:         types.TokenID(*token),
		Amount:        types.Amount(*amount),
		ReleaseHeight: types.BlockHeight(*releaseHeight),
	}
	if *releaseAfter > 0 {
		req.ReleaseAt = time.Now().Add(*releaseAfter)
	}

	res, err := lbClient.CreateLock(ctx, req)
	if err != nil {
		exitWithError("Error creating lock", err)
	}

	fmt.Printf("Created lock '%s': %d %s for '%s'\n", res.LockID, res.Lock.Amount, res.Lock.Token, res.Lock.Recipient)
	os.Exit(0)
}

func handleReleaseCommand(args []string, lbClient client.LockboxClient) {
	releaseCmd := flag.NewFlagSet("release", flag.ExitOnError)
	lockID := getLockID(releaseCmd, args, "release")

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	res, err := lbClient.Release(ctx, &client.ReleaseRequest{
		Caller: requireCaller("release"),
		LockID: lockID,
	})
	if err != nil {
		exitWithError("Error releasing lock", err)
	}

	fmt.Printf("Released lock '%s'\n", lockID)
	printTransfer(res.Transfer)
	os.Exit(0)
}

func handleCancelCommand(args []string, lbClient client.LockboxClient) {
	cancelCmd := flag.NewFlagSet("cancel", flag.ExitOnError)
	lockID := getLockID(cancelCmd, args, "cancel")

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	res, err := lbClient.Cancel(ctx, &client.CancelRequest{
		Caller: requireCaller("cancel"),
		LockID: lockID,
	})
	if err != nil {
		exitWithError("Error cancelling lock", err)
	}

	fmt.Printf("Cancelled lock '%s'\n", lockID)
	printTransfer(res.Transfer)
	os.Exit(0)
}

func handleGetCommand(args []string, lbClient client.LockboxClient) {
	getCmd := flag.NewFlagSet("get", flag.ExitOnError)
	lockID := getLockID(getCmd, args, "get")

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	record, err := lbClient.GetLock(ctx, lockID)
	if err != nil {
		exitWithError("Error fetching lock", err)
	}
	printLock(record)
	os.Exit(0)
}

func handleListCommand(args []string, lbClient client.LockboxClient, byOwner bool) {
	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	statusStr := listCmd.String("status", "", "Narrow to one status: locked, released, cancelled")
	listCmd.Parse(args)

	if listCmd.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Party ID required for list commands")
		os.Exit(1)
	}
	party := types.PartyID(listCmd.Arg(0))

	status, err := parseStatus(*statusStr)
	if err != nil {
		exitWithError("Invalid status filter", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var res *client.ListLocksResult
	if byOwner {
		res, err = lbClient.ListLocksByOwner(ctx, &client.ListLocksByOwnerRequest{Owner: party, Status: status})
	} else {
		res, err = lbClient.ListLocksByRecipient(ctx, &client.ListLocksByRecipientRequest{Recipient: party, Status: status})
	}
	if err != nil {
		exitWithError("Error listing locks", err)
	}

	if len(res.Locks) == 0 {
		fmt.Println("No locks found")
		os.Exit(0)
	}
	for _, record := range res.Locks {
		printLock(record)
	}
	os.Exit(0)
}

func getLockID(cmd *flag.FlagSet, args []string, commandName string) types.LockID {
	cmd.Parse(args)
	if cmd.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Lock ID required for %s command\n", commandName)
		os.Exit(1)
	}
	return types.LockID(cmd.Arg(0))
}

func parseStatus(s string) (*types.LockStatus, error) {
	if s == "" {
		return nil, nil
	}
	var status types.LockStatus
	switch s {
	case "locked":
		status = types.StatusLocked
	case "released":
		status = types.StatusReleased
	case "cancelled":
		status = types.StatusCancelled
	default:
		return nil, fmt.Errorf("unknown status %q (want locked, released or cancelled)", s)
	}
	return &status, nil
}

func printLock(record *types.LockRecord) {
	fmt.Printf("%s: %d %s from '%s' to '%s' [%s]\n",
		record.ID, record.Amount, record.Token, record.Owner, record.Recipient, statusName(record.Status))
	if record.Condition.Kind == types.ConditionHeight {
		fmt.Printf("  releasable at height %d\n", record.Condition.ReleaseHeight)
	} else {
		fmt.Printf("  releasable at %s\n", record.Condition.ReleaseAt.Format(time.RFC3339))
	}
}

func printTransfer(transfer *types.TransferInstruction) {
	if transfer == nil {
		return
	}
	fmt.Printf("Transfer: %d %s to '%s'\n", transfer.Amount, transfer.Token, transfer.Beneficiary)
}

func statusName(status types.LockStatus) string {
	switch status {
	case types.StatusReleased:
		return "released"
	case types.StatusCancelled:
		return "cancelled"
	default:
		return "locked"
	}
}

// showUsage prints help information for the CLI
func showUsage() {
	fmt.Println("Lockbox CLI")
	fmt.Println("\nUsage:")
	fmt.Println(" go run cmd/client/main.go [global-options] <command> [command-options] [args]")
	fmt.Println("\nGlobal Options:")
	fmt.Println(" -address string Server address (default \"localhost:8080\")")
	fmt.Println(" -caller string Caller identity for create, release and cancel")
	fmt.Println("\nCommands:")
	fmt.Println(" create -recipient <id> -token <denom> -amount <n> [-release-after <d> | -release-height <h>]")
	fmt.Println("   Custody a new deposit under a release condition")
	fmt.Println(" release <lock-id>")
	fmt.Println("   Release a matured lock to its recipient")
	fmt.Println(" cancel <lock-id>")
	fmt.Println("   Cancel a lock before its condition is met, refunding the owner")
	fmt.Println(" get <lock-id>")
	fmt.Println("   Show one lock record")
	fmt.Println(" list-owner [-status <s>] <party-id>")
	fmt.Println("   List locks created by the given owner")
	fmt.Println(" list-recipient [-status <s>] <party-id>")
	fmt.Println("   List locks payable to the given recipient")
	fmt.Println(" help")
	fmt.Println("   Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println(" # Lock 100 uatom for bob, releasable in one hour")
	fmt.Println(" go run cmd/client/main.go -caller alice create -recipient bob -token uatom -amount 100 -release-after 1h")
	fmt.Println(" # Release the lock once the hour has passed")
	fmt.Println(" go run cmd/client/main.go -caller bob release lock-1")
	fmt.Println(" # List alice's locks that are still active")
	fmt.Println(" go run cmd/client/main.go list-owner -status locked alice")
}

// Prints error message and exits
func exitWithError(message string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", message, err)
	} else {
		fmt.Fprintf(os.Stderr, "%s\n", message)
	}
	os.Exit(1)
}
