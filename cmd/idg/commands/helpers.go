package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/governance-client/internal/constants"
	"github.com/fivetwenty-io/governance-client/pkg/governance"
)

// Common static errors used throughout the commands package.
var (
	ErrDeleteCancelled = errors.New("delete cancelled")
	ErrTokenRequired   = errors.New("token is required")
)

// ListOptions holds the flags shared by list commands.
type ListOptions struct {
	Limit   int
	Offset  int
	Count   bool
	Filters []string
	Sorters []string
	// All follows the offset through every page, using Limit as page size.
	All bool
}

func (o *ListOptions) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.Limit, "limit", constants.DefaultPageSize, "maximum number of results")
	cmd.Flags().IntVar(&o.Offset, "offset", 0, "number of results to skip")
	cmd.Flags().BoolVar(&o.Count, "count", false, "ask the server for the total count")
	cmd.Flags().StringArrayVar(&o.Filters, "filter", nil, `filter expression, e.g. 'name eq "Admins"' (repeatable)`)
	cmd.Flags().StringArrayVar(&o.Sorters, "sort", nil, "sort field, prefix with - for descending (repeatable)")
	cmd.Flags().BoolVar(&o.All, "all", false, "fetch every page, --limit results at a time")
}

// QueryParams converts the flags into query parameters.
func (o ListOptions) QueryParams() *governance.QueryParams {
	params := governance.NewQueryParams()
	params.Limit = o.Limit
	params.Offset = o.Offset
	params.Count = o.Count
	params.Filters = append(params.Filters, o.Filters...)
	params.Sorters = append(params.Sorters, o.Sorters...)

	return params
}

// listPage fetches the page the flags describe, or every page from the
// offset onwards when --all is set.
func listPage[T any](
	cmd *cobra.Command,
	opts ListOptions,
	fetch func(context.Context, *governance.QueryParams) (*governance.ListResponse[T], error),
) (*governance.ListResponse[T], error) {
	if !opts.All {
		return fetch(cmd.Context(), opts.QueryParams())
	}

	items, err := governance.FetchAllPages(cmd.Context(), fetch, opts.QueryParams(), nil)
	if err != nil {
		return nil, err //nolint:wrapcheck // API errors are rendered as is
	}

	if items == nil {
		items = []T{}
	}

	return &governance.ListResponse[T]{Items: items, Total: len(items), Offset: opts.Offset}, nil
}

// confirm asks a yes/no question on the command's input. Anything but y or
// yes is a no.
func confirm(cmd *cobra.Command, question string) bool {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)

	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))

	return answer == "y" || answer == "yes"
}

// deleteWithBulk deletes a single id directly and several ids through the
// bulk endpoint, printing what happened.
func deleteWithBulk(
	cmd *cobra.Command,
	app *App,
	kind string,
	ids []string,
	force bool,
	deleteOne func(context.Context, string) error,
	deleteMany func(context.Context, []string) (*governance.Task, error),
) error {
	if !force && !confirm(cmd, fmt.Sprintf("Really delete %s %s?", kind, strings.Join(ids, ", "))) {
		return ErrDeleteCancelled
	}

	ctx := cmd.Context()

	if len(ids) == 1 {
		err := deleteOne(ctx, ids[0])
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", kind, ids[0])

		return nil
	}

	task, err := deleteMany(ctx, ids)
	if err != nil {
		return err
	}

	return renderItem(cmd, app, task, taskColumns)
}

// deleteEach deletes ids one call per id, a few at a time, for resources
// without a bulk endpoint. Every id is attempted; the failures are joined.
func deleteEach(
	cmd *cobra.Command,
	kind string,
	ids []string,
	force bool,
	deleteOne func(context.Context, string) error,
) error {
	if !force && !confirm(cmd, fmt.Sprintf("Really delete %s %s?", kind, strings.Join(ids, ", "))) {
		return ErrDeleteCancelled
	}

	operations := make([]governance.BatchOperation, 0, len(ids))
	for _, id := range ids {
		operations = append(operations, governance.BatchOperation{
			ID: id,
			Run: func(ctx context.Context) (interface{}, error) {
				return nil, deleteOne(ctx, id)
			},
		})
	}

	executor := governance.NewBatchExecutor(constants.DeleteConcurrency)
	results := executor.Execute(cmd.Context(), operations)

	out := cmd.OutOrStdout()

	for _, result := range results {
		if result.Success {
			_, _ = fmt.Fprintf(out, "Deleted %s %s\n", kind, result.ID)
		}
	}

	errs := governance.BatchErrors(results)
	if len(errs) == 1 {
		return errs[0]
	}

	return errors.Join(errs...)
}
