package mcp

import (
	"context"
	"encoding/json"

	"github.com/rpggio/timewizard/internal/domain/entry"
	"github.com/rpggio/timewizard/internal/domain/line"
	"github.com/rpggio/timewizard/internal/domain/note"
	"github.com/rpggio/timewizard/internal/domain/payweek"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerTools(server *sdkmcp.Server, svc Services) {
	// Calendar
	addTool(server, "week_info",
		"Get the week-ending Saturday, week start, and pay-week flag for a work date",
		func(ctx context.Context, in WeekInfoParams) (any, error) {
			workDate, err := payweek.ParseDate(in.WorkDate)
			if err != nil {
				return nil, err
			}
			anchor, err := svc.Settings.Anchor(ctx)
			if err != nil {
				return nil, err
			}
			return payweek.Info(workDate, anchor), nil
		})

	// Entries
	addTool(server, "list_entries",
		"List time entries for a week (week_ending) or an inclusive range (start_date and end_date)",
		func(ctx context.Context, in ListEntriesParams) (any, error) {
			return svc.Entries.List(ctx, entry.ListOptions{
				WeekEnding: in.WeekEnding,
				StartDate:  in.StartDate,
				EndDate:    in.EndDate,
			})
		})
	addTool(server, "upsert_entry",
		"Create or overwrite the hours booked on one line code for one work date",
		func(ctx context.Context, in UpsertEntryParams) (any, error) {
			return svc.Entries.Upsert(ctx, entry.UpsertRequest{
				WorkDate: in.WorkDate,
				LineCode: in.LineCode,
				STHours:  in.STHours,
				OTHours:  in.OTHours,
			})
		})

	// Notes
	addTool(server, "list_notes",
		"List work notes for a day (work_date), a week (week_ending), or an inclusive range (start_date and end_date)",
		func(ctx context.Context, in ListNotesParams) (any, error) {
			return svc.Notes.List(ctx, note.ListOptions{
				WorkDate:   in.WorkDate,
				WeekEnding: in.WeekEnding,
				StartDate:  in.StartDate,
				EndDate:    in.EndDate,
			})
		})
	addTool(server, "save_note",
		"Create or replace the note for one line code on one work date",
		func(ctx context.Context, in SaveNoteParams) (any, error) {
			return svc.Notes.Save(ctx, note.SaveRequest{
				WorkDate: in.WorkDate,
				LineCode: in.LineCode,
				Text:     in.NoteText,
			})
		})
	addTool(server, "delete_note",
		"Delete the note for one line code on one work date",
		func(ctx context.Context, in DeleteNoteParams) (any, error) {
			if err := svc.Notes.Delete(ctx, in.WorkDate, in.LineCode); err != nil {
				return nil, err
			}
			return map[string]string{"message": "Note deleted"}, nil
		})

	// Summaries
	addTool(server, "weekly_summary",
		"Summarize one week: totals, per-day totals, per-line totals, and pay-week flag",
		func(ctx context.Context, in WeeklySummaryParams) (any, error) {
			return svc.Summaries.Weekly(ctx, in.WeekEnding)
		})
	addTool(server, "range_report",
		"Report totals, days worked, and average hours per day over an inclusive date range",
		func(ctx context.Context, in RangeReportParams) (any, error) {
			return svc.Summaries.Range(ctx, in.StartDate, in.EndDate)
		})

	// Lines
	addTool(server, "list_lines",
		"List all line codes in display order",
		func(ctx context.Context, _ NoParams) (any, error) {
			return svc.Lines.List(ctx)
		})
	addTool(server, "create_line",
		"Register a new line code at the end of the display order",
		func(ctx context.Context, in CreateLineParams) (any, error) {
			return svc.Lines.Create(ctx, line.CreateRequest{
				Code:      in.LineCode,
				Label:     in.Label,
				IsProject: in.IsProject,
			})
		})
	addTool(server, "set_line_visibility",
		"Show or hide a line code",
		func(ctx context.Context, in SetLineVisibilityParams) (any, error) {
			return svc.Lines.SetVisibility(ctx, in.LineCode, in.IsVisible)
		})
	addTool(server, "delete_line",
		"Delete a project line code. Standard line codes can only be hidden.",
		func(ctx context.Context, in DeleteLineParams) (any, error) {
			if err := svc.Lines.Delete(ctx, in.LineCode); err != nil {
				return nil, err
			}
			return map[string]string{"message": "Line code deleted"}, nil
		})

	// Settings
	addTool(server, "list_settings",
		"List stored settings",
		func(ctx context.Context, _ NoParams) (any, error) {
			return svc.Settings.List(ctx)
		})
	addTool(server, "get_setting",
		"Get one setting, falling back to its default",
		func(ctx context.Context, in GetSettingParams) (any, error) {
			return svc.Settings.Get(ctx, in.Key)
		})
	addTool(server, "update_setting",
		"Replace the value of a setting",
		func(ctx context.Context, in UpdateSettingParams) (any, error) {
			return svc.Settings.Set(ctx, in.Key, in.Value)
		})
}

// addTool registers a tool whose result is returned as JSON text.
func addTool[In any](server *sdkmcp.Server, name, description string, fn func(context.Context, In) (any, error)) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        name,
		Description: description,
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in In) (*sdkmcp.CallToolResult, any, error) {
		out, err := fn(ctx, in)
		if err != nil {
			return errorResult(err)
		}
		return jsonResult(out, false)
	})
}

func jsonResult(v any, isError bool) (*sdkmcp.CallToolResult, any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, nil, err
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
		IsError: isError,
	}, nil, nil
}

func errorResult(err error) (*sdkmcp.CallToolResult, any, error) {
	apiErr := MapError(err)
	if apiErr == nil {
		return nil, nil, err
	}
	return jsonResult(apiErr, true)
}
