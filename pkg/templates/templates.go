// Package templates holds the named prompt and notification templates and
// a pure Render entry point. Rendering has no side effects; callers pass
// every value the template needs in vars.
package templates

import (
	"fmt"
	"strings"
	"text/template"
)

// Template keys.
const (
	MorningOverviewSystem  = "morning_overview_system"
	MorningOverviewContext = "morning_overview_context"
	MorningOverviewAsk     = "morning_overview_ask"

	SmartNotificationSystem  = "smart_notification_system"
	SmartNotificationContext = "smart_notification_context"
	SmartNotificationAsk     = "smart_notification_ask"

	InboundSMSSystem  = "inbound_sms_system"
	InboundSMSContext = "inbound_sms_context"
	InboundSMSAsk     = "inbound_sms_ask"

	BrainDumpItemSystem  = "brain_dump_item_system"
	BrainDumpItemContext = "brain_dump_item_context"
	BrainDumpItemAsk     = "brain_dump_item_ask"

	CalendarReminderBody = "calendar_reminder_body"
	AlarmBody            = "alarm_body"
)

const morningOverviewSystem = `You are the user's personal planning assistant.
You prepare a short, energizing morning overview of the day ahead.
Be concrete: name tasks and events, mention times, flag risks.
Keep it under four sentences.`

const morningOverviewContext = `Today is {{.Date}} ({{.Weekday}}).
Current time: {{.Now}} ({{.Timezone}}).

Day context:
{{.DayContext}}

Tasks at risk of being skipped (risk score, completion rate):
{{- if .RiskyTasks}}
{{- range .RiskyTasks}}
- {{.Name}} (score {{.Score}}, completion {{.CompletionRate}}%)
{{- end}}
{{- else}}
(none)
{{- end}}`

const morningOverviewAsk = `Write the morning overview now.
Call send_overview exactly once with the final text.`

const smartNotificationSystem = `You are the user's personal planning assistant.
You decide whether a proactive push notification is warranted right now.
Only notify when something is actionable in the next hour. Silence is a
valid and common decision.`

const smartNotificationContext = `Current time: {{.Now}} ({{.Timezone}}).

Day context:
{{.DayContext}}

Notifications already sent today:
{{- if .RecentNotifications}}
{{- range .RecentNotifications}}
- {{.SentAt}}: {{.Content}}
{{- end}}
{{- else}}
(none)
{{- end}}`

const smartNotificationAsk = `Decide whether to notify the user.
Call decide_notification exactly once.`

const inboundSMSSystem = `You are the user's personal planning assistant,
replying over SMS. Be brief and direct; one or two sentences. You can
create tasks and record task actions through tools when the user asks.`

const inboundSMSContext = `Current time: {{.Now}} ({{.Timezone}}).

Day context:
{{.DayContext}}

Recent conversation:
{{- range .RecentMessages}}
{{.Role}}: {{.Content}}
{{- end}}`

const inboundSMSAsk = `The user just sent: "{{.Inbound}}"
Handle the request with tools if needed, then call send_reply exactly once
with your SMS response.`

const brainDumpItemSystem = `You are the user's personal planning assistant.
You triage one raw brain-dump line into the planning system.`

const brainDumpItemContext = `Today is {{.Date}}.
Current time: {{.Now}} ({{.Timezone}}).

Day context:
{{.DayContext}}`

const brainDumpItemAsk = `Brain dump item: "{{.Item}}"
If it is an actionable task for today, call create_task. Otherwise call
save_note with a one-line summary. Call exactly one tool.`

const calendarReminderBody = `{{.Name}} starts {{if eq .MinutesBefore 0}}now{{else}}in {{.MinutesBefore}} minutes{{end}} ({{.StartTime}})`

const alarmBody = `Alarm: {{.Name}} ({{.Time}})`

var registry = map[string]*template.Template{
	MorningOverviewSystem:  parse(MorningOverviewSystem, morningOverviewSystem),
	MorningOverviewContext: parse(MorningOverviewContext, morningOverviewContext),
	MorningOverviewAsk:     parse(MorningOverviewAsk, morningOverviewAsk),

	SmartNotificationSystem:  parse(SmartNotificationSystem, smartNotificationSystem),
	SmartNotificationContext: parse(SmartNotificationContext, smartNotificationContext),
	SmartNotificationAsk:     parse(SmartNotificationAsk, smartNotificationAsk),

	InboundSMSSystem:  parse(InboundSMSSystem, inboundSMSSystem),
	InboundSMSContext: parse(InboundSMSContext, inboundSMSContext),
	InboundSMSAsk:     parse(InboundSMSAsk, inboundSMSAsk),

	BrainDumpItemSystem:  parse(BrainDumpItemSystem, brainDumpItemSystem),
	BrainDumpItemContext: parse(BrainDumpItemContext, brainDumpItemContext),
	BrainDumpItemAsk:     parse(BrainDumpItemAsk, brainDumpItemAsk),

	CalendarReminderBody: parse(CalendarReminderBody, calendarReminderBody),
	AlarmBody:            parse(AlarmBody, alarmBody),
}

func parse(key, text string) *template.Template {
	return template.Must(template.New(key).Parse(text))
}

// Render executes the named template with vars.
func Render(key string, vars any) (string, error) {
	tmpl, ok := registry[key]
	if !ok {
		return "", fmt.Errorf("unknown template %q", key)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, vars); err != nil {
		return "", fmt.Errorf("render %s: %w", key, err)
	}
	return b.String(), nil
}

// MustRender is Render for static-var call sites where a failure is a
// programming error.
func MustRender(key string, vars any) string {
	out, err := Render(key, vars)
	if err != nil {
		panic(err)
	}
	return out
}
