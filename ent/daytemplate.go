// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/daybreakhq/daybreak/ent/daytemplate"
	"github.com/daybreakhq/daybreak/ent/user"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/google/uuid"
)

// DayTemplate is the model entity for the DayTemplate schema.
type DayTemplate struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Slug holds the value of the "slug" field.
	Slug string `json:"slug,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime string `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime string `json:"end_time,omitempty"`
	// RoutineDefinitionIds holds the value of the "routine_definition_ids" field.
	RoutineDefinitionIds []uuid.UUID `json:"routine_definition_ids,omitempty"`
	// TimeBlocks holds the value of the "time_blocks" field.
	TimeBlocks []domain.TimeBlock `json:"time_blocks,omitempty"`
	// HighLevelPlan holds the value of the "high_level_plan" field.
	HighLevelPlan domain.HighLevelPlan `json:"high_level_plan,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DayTemplateQuery when eager-loading is set.
	Edges        DayTemplateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DayTemplateEdges holds the relations/edges for other nodes in the graph.
type DayTemplateEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DayTemplateEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DayTemplate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case daytemplate.FieldRoutineDefinitionIds, daytemplate.FieldTimeBlocks, daytemplate.FieldHighLevelPlan:
			values[i] = new([]byte)
		case daytemplate.FieldSlug, daytemplate.FieldStartTime, daytemplate.FieldEndTime:
			values[i] = new(sql.NullString)
		case daytemplate.FieldID, daytemplate.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DayTemplate fields.
func (_m *DayTemplate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case daytemplate.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case daytemplate.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case daytemplate.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case daytemplate.FieldStartTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.String
			}
		case daytemplate.FieldEndTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = value.String
			}
		case daytemplate.FieldRoutineDefinitionIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field routine_definition_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RoutineDefinitionIds); err != nil {
					return fmt.Errorf("unmarshal field routine_definition_ids: %w", err)
				}
			}
		case daytemplate.FieldTimeBlocks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field time_blocks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TimeBlocks); err != nil {
					return fmt.Errorf("unmarshal field time_blocks: %w", err)
				}
			}
		case daytemplate.FieldHighLevelPlan:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field high_level_plan", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.HighLevelPlan); err != nil {
					return fmt.Errorf("unmarshal field high_level_plan: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DayTemplate.
// This includes values selected through modifiers, order, etc.
func (_m *DayTemplate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the DayTemplate entity.
func (_m *DayTemplate) QueryUser() *UserQuery {
	return NewDayTemplateClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this DayTemplate.
// Note that you need to call DayTemplate.Unwrap() before calling this method if this DayTemplate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DayTemplate) Update() *DayTemplateUpdateOne {
	return NewDayTemplateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DayTemplate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DayTemplate) Unwrap() *DayTemplate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DayTemplate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DayTemplate) String() string {
	var builder strings.Builder
	builder.WriteString("DayTemplate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime)
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(_m.EndTime)
	builder.WriteString(", ")
	builder.WriteString("routine_definition_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoutineDefinitionIds))
	builder.WriteString(", ")
	builder.WriteString("time_blocks=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeBlocks))
	builder.WriteString(", ")
	builder.WriteString("high_level_plan=")
	builder.WriteString(fmt.Sprintf("%v", _m.HighLevelPlan))
	builder.WriteByte(')')
	return builder.String()
}

// DayTemplates is a parsable slice of DayTemplate.
type DayTemplates []*DayTemplate
