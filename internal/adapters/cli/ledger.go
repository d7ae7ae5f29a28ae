package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/supplychain-go/internal/application/ledger/queries"
	"github.com/andrescamacho/supplychain-go/internal/domain/ledger"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
)

// newLedgerCommand creates the ledger command with subcommands
func newLedgerCommand(s *Session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Transaction journal",
		Long: `View the journal of every trade, production run and stock adjustment.

Examples:
  ledger list
  ledger list --party "Furniture Factory" --type MANUFACTURE
  ledger list --category RETAIL --good Chair --limit 10
  ledger statement "Downtown Mall"`,
	}

	cmd.AddCommand(newLedgerListCommand(s))
	cmd.AddCommand(newLedgerStatementCommand(s))

	return cmd
}

// newLedgerListCommand creates the ledger list subcommand
func newLedgerListCommand(s *Session) *cobra.Command {
	var (
		party     string
		startDate string
		endDate   string
		category  string
		txType    string
		good      string
		limit     int
		offset    int
		order     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long: `List journaled transactions with optional filtering.

Categories:
  WHOLESALE             - Factory to market sales
  RETAIL                - Market to customer sales
  PRODUCTION            - Manufacturing runs
  INVENTORY_ADJUSTMENT  - Restocks and discards

Transaction Types:
  MARKET_PURCHASE    - A market bought from a factory
  CUSTOMER_PURCHASE  - A customer bought from a market
  MANUFACTURE        - A factory produced goods
  RESTOCK            - Goods or materials were delivered
  DISCARD            - Goods or materials were destroyed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := &queries.GetTransactionsQuery{
				Party:  party,
				Limit:  limit,
				Offset: offset,
			}

			switch strings.ToLower(order) {
			case "asc":
				query.OrderBy = "timestamp ASC"
			case "desc":
				query.OrderBy = "timestamp DESC"
			default:
				return shared.NewInvalidInputError("order", "must be asc or desc")
			}

			var err error
			if query.StartDate, err = parseDate(startDate, false); err != nil {
				return err
			}
			if query.EndDate, err = parseDate(endDate, true); err != nil {
				return err
			}
			if category != "" {
				query.Category = &category
			}
			if txType != "" {
				query.TransactionType = &txType
			}
			if good != "" {
				query.Good = &good
			}

			result, err := s.Send(cmd.Context(), query)
			if err != nil {
				return err
			}
			return displayTransactionList(cmd, result.(*queries.GetTransactionsResponse))
		},
	}

	cmd.Flags().StringVar(&party, "party", "", "Only transactions involving this party")
	cmd.Flags().StringVar(&startDate, "start-date", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&category, "category", "", "Filter by category")
	cmd.Flags().StringVar(&txType, "type", "", "Filter by transaction type")
	cmd.Flags().StringVar(&good, "good", "", "Filter by good")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of transactions to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of transactions to skip")
	cmd.Flags().StringVar(&order, "order", "desc", "Sort by time: asc or desc")

	return cmd
}

// newLedgerStatementCommand creates the statement subcommand
func newLedgerStatementCommand(s *Session) *cobra.Command {
	return &cobra.Command{
		Use:   "statement <party>",
		Short: "Revenue, expenses and net for one party",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := s.Send(cmd.Context(), &queries.GetStatementQuery{Party: args[0]})
			if err != nil {
				return err
			}
			displayStatement(cmd, result.(*queries.GetStatementResponse).Statement)
			return nil
		},
	}
}

// parseDate reads YYYY-MM-DD; endOfDay moves the result to the last second of that day
func parseDate(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, shared.NewInvalidInputError("date", fmt.Sprintf("%q is not YYYY-MM-DD", value))
	}
	if endOfDay {
		parsed = parsed.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	}
	return &parsed, nil
}

// displayTransactionList formats and displays transaction list
func displayTransactionList(cmd *cobra.Command, response *queries.GetTransactionsResponse) error {
	out := cmd.OutOrStdout()
	if len(response.Transactions) == 0 {
		fmt.Fprintln(out, "No transactions found")
		return nil
	}

	fmt.Fprintf(out, "TRANSACTIONS (Showing %d of %d total)\n", len(response.Transactions), response.Total)

	w := newTable(out)
	fmt.Fprintln(w, "ID\tTimestamp\tType\tParty\tCounterparty\tGood\tQty\tUnit\tTotal\tBalance")
	for _, tx := range response.Transactions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			tx.ID[:8],
			tx.Timestamp.Format("2006-01-02 15:04:05"),
			tx.Type,
			tx.Party,
			tx.Counterparty,
			tx.Good,
			tx.Quantity,
			tx.UnitPrice,
			tx.Total,
			tx.BalanceAfter,
		)
	}
	return w.Flush()
}

// displayStatement formats a party's cash statement
func displayStatement(cmd *cobra.Command, statement *ledger.Statement) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "STATEMENT: %s (%d transactions)\n", statement.Party, statement.Transactions)

	for _, category := range ledger.AllCategories() {
		flow, ok := statement.ByCategory[category]
		if !ok || !category.MovesCash() {
			continue
		}
		fmt.Fprintf(out, "  %-22s %s\n", category.String()+":", formatSigned(flow))
	}
	fmt.Fprintf(out, "  %-22s %s\n", "Revenue:", statement.Revenue)
	fmt.Fprintf(out, "  %-22s %s\n", "Expenses:", statement.Expenses)
	fmt.Fprintf(out, "  %-22s %s\n", "Net:", formatSigned(statement.Net()))
}
