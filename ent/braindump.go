// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/daybreakhq/daybreak/ent/braindump"
	"github.com/daybreakhq/daybreak/ent/user"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/google/uuid"
)

// BrainDump is the model entity for the BrainDump schema.
type BrainDump struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Date holds the value of the "date" field.
	Date string `json:"date,omitempty"`
	// Items holds the value of the "items" field.
	Items []domain.BrainDumpItem `json:"items,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BrainDumpQuery when eager-loading is set.
	Edges        BrainDumpEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BrainDumpEdges holds the relations/edges for other nodes in the graph.
type BrainDumpEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BrainDumpEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BrainDump) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case braindump.FieldItems:
			values[i] = new([]byte)
		case braindump.FieldDate:
			values[i] = new(sql.NullString)
		case braindump.FieldID, braindump.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BrainDump fields.
func (_m *BrainDump) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case braindump.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case braindump.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case braindump.FieldDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.String
			}
		case braindump.FieldItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Items); err != nil {
					return fmt.Errorf("unmarshal field items: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BrainDump.
// This includes values selected through modifiers, order, etc.
func (_m *BrainDump) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the BrainDump entity.
func (_m *BrainDump) QueryUser() *UserQuery {
	return NewBrainDumpClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this BrainDump.
// Note that you need to call BrainDump.Unwrap() before calling this method if this BrainDump
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BrainDump) Update() *BrainDumpUpdateOne {
	return NewBrainDumpClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BrainDump entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BrainDump) Unwrap() *BrainDump {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BrainDump is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BrainDump) String() string {
	var builder strings.Builder
	builder.WriteString("BrainDump(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date)
	builder.WriteString(", ")
	builder.WriteString("items=")
	builder.WriteString(fmt.Sprintf("%v", _m.Items))
	builder.WriteByte(')')
	return builder.String()
}

// BrainDumps is a parsable slice of BrainDump.
type BrainDumps []*BrainDump
