package cli

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"dispatchdash/internal/config"
	"dispatchdash/internal/domain"
	"dispatchdash/internal/ui/coordinator"
	"dispatchdash/internal/ui/services/pagination"
	"dispatchdash/internal/ui/services/sorting"
	"dispatchdash/internal/ui/viewmodels"
)

type listOptions struct {
	table    string
	page     int
	pageSize int
	search   string
	columns  []string
	sort     string
	json     bool
}

// listOutput is the --json document
type listOutput struct {
	Table      string              `json:"table"`
	Query      string              `json:"query,omitempty"`
	Sort       string              `json:"sort,omitempty"`
	Columns    []string            `json:"columns"`
	Rows       []map[string]string `json:"rows"`
	Pagination pagination.Meta     `json:"pagination"`
	Pages      []string            `json:"pages"`
}

func newListCmd(data *dataFlags) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of a table without starting the UI",
		Long: `Prints one page of the drivers or orders table using the same paging,
search, sorting and column layout as the dashboard.`,
		Example: `  # Second page of drivers, 20 per page
  dispatchdash list --page 2 --page-size 20

  # Orders matching "harbor", newest first, as JSON
  dispatchdash list --table orders --search harbor --sort created:desc --json

  # Only some columns, in this order
  dispatchdash list --columns status,name,zone`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, *data, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.table, "table", "t", string(domain.TableDrivers), "table to list (drivers, orders)")
	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", 0, "rows per page: 10, 20, 50 or 100 (default from config)")
	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "case-insensitive search across all columns")
	cmd.Flags().StringSliceVarP(&opts.columns, "columns", "c", nil, "visible columns in display order (default from config)")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "sort column, optionally with :asc or :desc")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print JSON instead of a table")

	return cmd
}

func runList(cmd *cobra.Command, data dataFlags, opts listOptions) error {
	cfg, warning := loadConfig(cmd)

	level := "warn"
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = "debug"
	}
	config.InitWriterLogger(level, cmd.ErrOrStderr())
	logger = config.ComponentLogger("cli")
	if warning != "" {
		logger.Warn().Str("error", warning).Msg("config unusable, using defaults")
	}

	c, err := newListCoordinator(cfg, data, opts)
	if err != nil {
		return err
	}
	defer c.Close()

	if opts.search != "" {
		if utf8.RuneCountInString(opts.search) < cfg.Table.MinSearchLength {
			logger.Warn().
				Str("query", opts.search).
				Int("min_length", cfg.Table.MinSearchLength).
				Msg("search shorter than the minimum length, showing all rows")
		} else {
			c.ApplySearch(opts.search)
		}
	}

	column, descending, err := sorting.ParseSort(opts.sort)
	if err != nil {
		return err
	}
	if column != "" {
		if err := c.ApplySort(column, descending); err != nil {
			return err
		}
	}

	if opts.page != 1 {
		c.SetPage(opts.page)
		if c.Pagination.CurrentPage() != opts.page {
			return fmt.Errorf("page %d out of range (1-%d)", opts.page, c.Pagination.TotalPages())
		}
	}

	tv := c.View()
	if opts.json {
		return writeListJSON(cmd, tv)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), renderListTable(tv))
	return err
}

// newListCoordinator builds a coordinator for the selected table with the
// page size and column overrides applied on top of the config
func newListCoordinator(cfg *config.Config, data dataFlags, opts listOptions) (*coordinator.Coordinator, error) {
	id := domain.TableID(opts.table)
	descriptors := domain.ColumnsFor(id)
	if descriptors == nil {
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownTable, opts.table)
	}

	settings := cfg.Table
	if opts.pageSize != 0 {
		settings.PageSize = opts.pageSize
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	order, visible := cfg.LayoutFor(id)
	if len(opts.columns) > 0 {
		known := domain.ColumnIDs(descriptors)
		for _, col := range opts.columns {
			if !slices.Contains(known, col) {
				return nil, fmt.Errorf("%w: %q", config.ErrUnknownColumn, col)
			}
		}
		visible = opts.columns
		order = slices.Clone(opts.columns)
		for _, col := range known {
			if !slices.Contains(order, col) {
				order = append(order, col)
			}
		}
	}

	return coordinator.New(nil, coordinator.Options{
		Table:    id,
		Store:    sampleStores(data)[id],
		Settings: settings,
		Order:    order,
		Visible:  visible,
	})
}

func writeListJSON(cmd *cobra.Command, tv viewmodels.TableView) error {
	out := listOutput{
		Table:      string(tv.Table),
		Query:      tv.Query,
		Columns:    make([]string, 0, len(tv.Columns)),
		Rows:       make([]map[string]string, 0, len(tv.Rows)),
		Pagination: tv.Pagination,
		Pages:      make([]string, 0, len(tv.Pages)),
	}
	if tv.SortColumn != "" {
		out.Sort = tv.SortColumn + ":" + sorting.OrderAsc
		if tv.SortDescending {
			out.Sort = tv.SortColumn + ":" + sorting.OrderDesc
		}
	}
	for _, col := range tv.Columns {
		out.Columns = append(out.Columns, col.ID)
	}
	for _, r := range tv.Rows {
		row := make(map[string]string, len(tv.Columns))
		for _, col := range tv.Columns {
			row[col.ID] = r.Cell(col.ID)
		}
		out.Rows = append(out.Rows, row)
	}
	for _, p := range tv.Pages {
		out.Pages = append(out.Pages, p.String())
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func renderListTable(tv viewmodels.TableView) string {
	headers := make([]string, len(tv.Columns))
	for i, col := range tv.Columns {
		headers[i] = col.Label
		if col.ID == tv.SortColumn {
			if tv.SortDescending {
				headers[i] += " ▼"
			} else {
				headers[i] += " ▲"
			}
		}
	}

	rows := make([][]string, len(tv.Rows))
	for i, r := range tv.Rows {
		cells := make([]string, len(tv.Columns))
		for j, col := range tv.Columns {
			cells[j] = r.Cell(col.ID)
		}
		rows[i] = cells
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	return t.String() + "\n" + listSummary(tv)
}

// listSummary is the plain-text pager line printed under the table
func listSummary(tv viewmodels.TableView) string {
	meta := tv.Pagination
	if meta.TotalItems == 0 {
		if tv.Query != "" {
			return fmt.Sprintf("No records match %q", tv.Query)
		}
		return "No records"
	}

	pages := make([]string, len(tv.Pages))
	for i, p := range tv.Pages {
		if p.IsEllipsis() {
			pages[i] = p.String()
			continue
		}
		if int(p) == meta.CurrentPage {
			pages[i] = "[" + p.String() + "]"
		} else {
			pages[i] = p.String()
		}
	}
	return fmt.Sprintf("%d–%d of %d · page %d of %d · %s",
		meta.StartIndex+1, meta.EndIndex, meta.TotalItems,
		meta.CurrentPage, meta.TotalPages, strings.Join(pages, " "))
}
