package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `timewizard records hours worked per day per line code and groups them into weeks ending on Saturday.

Core concepts:
- Entry: st_hours and ot_hours booked on one line code for one work_date. Saving the same (work_date, line_code) again overwrites it.
- Week ending: the Saturday that closes a work date's week. A Saturday belongs to the week ending the following Saturday.
- Pay week: a week ending exactly a multiple of 14 days from the base_pay_week_ending setting.
- Line code: a standard line (never deletable, only hidden) or a project line (deletable).
- Note: free text attached to one (work_date, line_code). Saving again replaces the text.

Typical workflow:
1) week_info(work_date) to find the week a day belongs to.
2) list_lines to see which line codes are visible.
3) upsert_entry for each day and line, and save_note for anything worth remembering.
4) weekly_summary(week_ending) or range_report(start_date, end_date) to review totals.

Docs:
- timewizard://docs/pay-weeks
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "timewizard://docs/pay-weeks",
		Name:        "docs_pay_weeks",
		Title:       "Week-ending and pay-week rules",
		Description: "How work dates map to week-ending Saturdays and which weeks are pay weeks.",
		Content: `# Week-ending and pay-week rules

## Week ending

- Sunday through Friday map to the next Saturday.
- Saturday maps to the Saturday seven days later.
- The week starts on the Sunday six days before the week ending.

## Pay weeks

- ` + "`base_pay_week_ending`" + ` (default 2025-11-22) is a known pay-week Saturday.
- A week is a pay week when its Saturday is a whole number of 14-day periods away from that anchor, before or after.
- ` + "`pay_frequency_days`" + ` is stored for display only; the period is always 14 days.

## Stored flags

- Each entry stores the pay-week flag computed when it was written.
- ` + "`weekly_summary`" + ` always recomputes the flag from the current anchor.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
