package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/eino-contrib/jsonschema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
)

// ToolRequest is what the prompt-based collaborators see of one turn.
type ToolRequest struct {
	Known        KnownContext
	Locale       Locale
	Engaged      bool
	Preamble     string
	NextQuestion string
	LastUserText string

	// LastUserIntent is the recognized kind of LastUserText, such as
	// "greeting" or "content".
	LastUserIntent string
}

type slotRow struct {
	name  string
	value string
}

func knownRows(k KnownContext) []slotRow {
	var rows []slotRow
	add := func(name string, set bool, value func() string) {
		if set {
			rows = append(rows, slotRow{name: name, value: value()})
		}
	}
	add("eventType", k.EventType != nil, func() string { return string(*k.EventType) })
	add("peopleCount", k.PeopleCount != nil, func() string { return strconv.Itoa(*k.PeopleCount) })
	add("indoorOutdoor", k.IndoorOutdoor != nil, func() string { return string(*k.IndoorOutdoor) })
	add("vibe", k.Vibe != nil, func() string { return string(*k.Vibe) })
	if d := k.ConferenceDetails; d != nil {
		add("conferenceDetails.speakerCount", d.SpeakerCount != nil, func() string { return strconv.Itoa(*d.SpeakerCount) })
		add("conferenceDetails.needsMicrophones", d.NeedsMicrophones != nil, func() string { return strconv.FormatBool(*d.NeedsMicrophones) })
		add("conferenceDetails.microphoneType", d.MicrophoneType != nil, func() string { return string(*d.MicrophoneType) })
		add("conferenceDetails.needsVideo", d.NeedsVideo != nil, func() string { return strconv.FormatBool(*d.NeedsVideo) })
	}
	add("start", k.StartISO != nil, func() string { return *k.StartISO })
	add("end", k.EndISO != nil, func() string { return *k.EndISO })
	add("deliveryChoice", k.DeliveryChoice != nil, func() string { return string(*k.DeliveryChoice) })
	add("withInstallation", k.WithInstallation != nil, func() string { return strconv.FormatBool(*k.WithInstallation) })
	add("department", k.Department != nil, func() string { return *k.Department })
	add("address", k.Address != nil, func() string { return *k.Address })
	return rows
}

// FormatKnownContext renders the known slots as a markdown table. It returns
// an empty string when nothing is known.
func FormatKnownContext(k KnownContext) string {
	rows := knownRows(k)
	if len(rows) == 0 {
		return ""
	}
	var buf strings.Builder
	table := tablewriter.NewTable(&buf, tablewriter.WithRenderer(renderer.NewMarkdown()))
	table.Header("Slot", "Value")
	for _, row := range rows {
		_ = table.Append(row.name, row.value)
	}
	_ = table.Render()
	return buf.String()
}

func KnownContextSchema() (string, error) {
	schema := jsonschema.Reflect(&KnownContext{})
	schema.Title = "KnownContext"
	schema.Description = "Facts collected so far for an equipment rental quote."
	data, err := sonic.Marshal(schema)
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON schema: %w", err)
	}
	return string(data), nil
}

func FormatToolRequest(req *ToolRequest) (string, error) {
	knownJSON, err := sonic.Marshal(req.Known)
	if err != nil {
		return "", err
	}
	sections := []string{
		fmt.Sprintf("# Current Date: \n %s", time.Now().Format(time.RFC3339)),
		fmt.Sprintf("# Known context JSON:\n```json\n%s\n```", string(knownJSON)),
	}
	if table := FormatKnownContext(req.Known); table != "" {
		sections = append(sections, "# Known slots:\n"+table)
	}
	if req.LastUserText != "" {
		sections = append(sections, fmt.Sprintf("# Latest user message:\n%s", req.LastUserText))
	}
	if req.LastUserIntent != "" {
		sections = append(sections, fmt.Sprintf("# Latest user message intent:\n%s", req.LastUserIntent))
	}
	if req.NextQuestion != "" {
		sections = append(sections, fmt.Sprintf("# Next question to ask:\n%s", req.NextQuestion))
	}
	return strings.Join(sections, "\n\n"), nil
}
