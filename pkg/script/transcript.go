package script

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/chazu/colorbuttons/pkg/demo"
)

// Step is one transcript row: the state after an action.
type Step struct {
	Frame   uint64
	Action  string
	Example demo.Example
	Notify  demo.Notification
}

// Transcript lists the steps of a scenario in order.
type Transcript []Step

// States returns the state after each step.
func (t Transcript) States() []demo.State {
	return lo.Map(t, func(s Step, _ int) demo.State {
		return demo.State{Example: s.Example, Notify: s.Notify}
	})
}

// Write prints the transcript as a table.
func (t Transcript) Write(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Frame", "Action", "Example", "Notification"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	table.AppendBulk(lo.Map(t, func(s Step, _ int) []string {
		return []string{
			strconv.FormatUint(s.Frame, 10),
			s.Action,
			fmt.Sprintf("%d", int(s.Example)),
			string(s.Notify),
		}
	}))
	table.Render()
}
