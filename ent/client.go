// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/daybreakhq/daybreak/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/daybreakhq/daybreak/ent/auditlog"
	"github.com/daybreakhq/daybreak/ent/braindump"
	"github.com/daybreakhq/daybreak/ent/calendarentry"
	"github.com/daybreakhq/daybreak/ent/calendarentryseries"
	"github.com/daybreakhq/daybreak/ent/day"
	"github.com/daybreakhq/daybreak/ent/daytemplate"
	"github.com/daybreakhq/daybreak/ent/event"
	"github.com/daybreakhq/daybreak/ent/job"
	"github.com/daybreakhq/daybreak/ent/message"
	"github.com/daybreakhq/daybreak/ent/pushnotification"
	"github.com/daybreakhq/daybreak/ent/pushsubscription"
	"github.com/daybreakhq/daybreak/ent/routine"
	"github.com/daybreakhq/daybreak/ent/task"
	"github.com/daybreakhq/daybreak/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AuditLog is the client for interacting with the AuditLog builders.
	AuditLog *AuditLogClient
	// BrainDump is the client for interacting with the BrainDump builders.
	BrainDump *BrainDumpClient
	// CalendarEntry is the client for interacting with the CalendarEntry builders.
	CalendarEntry *CalendarEntryClient
	// CalendarEntrySeries is the client for interacting with the CalendarEntrySeries builders.
	CalendarEntrySeries *CalendarEntrySeriesClient
	// Day is the client for interacting with the Day builders.
	Day *DayClient
	// DayTemplate is the client for interacting with the DayTemplate builders.
	DayTemplate *DayTemplateClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// Job is the client for interacting with the Job builders.
	Job *JobClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// PushNotification is the client for interacting with the PushNotification builders.
	PushNotification *PushNotificationClient
	// PushSubscription is the client for interacting with the PushSubscription builders.
	PushSubscription *PushSubscriptionClient
	// Routine is the client for interacting with the Routine builders.
	Routine *RoutineClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AuditLog = NewAuditLogClient(c.config)
	c.BrainDump = NewBrainDumpClient(c.config)
	c.CalendarEntry = NewCalendarEntryClient(c.config)
	c.CalendarEntrySeries = NewCalendarEntrySeriesClient(c.config)
	c.Day = NewDayClient(c.config)
	c.DayTemplate = NewDayTemplateClient(c.config)
	c.Event = NewEventClient(c.config)
	c.Job = NewJobClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.PushNotification = NewPushNotificationClient(c.config)
	c.PushSubscription = NewPushSubscriptionClient(c.config)
	c.Routine = NewRoutineClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.User = NewUserClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		AuditLog:            NewAuditLogClient(cfg),
		BrainDump:           NewBrainDumpClient(cfg),
		CalendarEntry:       NewCalendarEntryClient(cfg),
		CalendarEntrySeries: NewCalendarEntrySeriesClient(cfg),
		Day:                 NewDayClient(cfg),
		DayTemplate:         NewDayTemplateClient(cfg),
		Event:               NewEventClient(cfg),
		Job:                 NewJobClient(cfg),
		Message:             NewMessageClient(cfg),
		PushNotification:    NewPushNotificationClient(cfg),
		PushSubscription:    NewPushSubscriptionClient(cfg),
		Routine:             NewRoutineClient(cfg),
		Task:                NewTaskClient(cfg),
		User:                NewUserClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		AuditLog:            NewAuditLogClient(cfg),
		BrainDump:           NewBrainDumpClient(cfg),
		CalendarEntry:       NewCalendarEntryClient(cfg),
		CalendarEntrySeries: NewCalendarEntrySeriesClient(cfg),
		Day:                 NewDayClient(cfg),
		DayTemplate:         NewDayTemplateClient(cfg),
		Event:               NewEventClient(cfg),
		Job:                 NewJobClient(cfg),
		Message:             NewMessageClient(cfg),
		PushNotification:    NewPushNotificationClient(cfg),
		PushSubscription:    NewPushSubscriptionClient(cfg),
		Routine:             NewRoutineClient(cfg),
		Task:                NewTaskClient(cfg),
		User:                NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AuditLog.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AuditLog, c.BrainDump, c.CalendarEntry, c.CalendarEntrySeries, c.Day,
		c.DayTemplate, c.Event, c.Job, c.Message, c.PushNotification,
		c.PushSubscription, c.Routine, c.Task, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AuditLog, c.BrainDump, c.CalendarEntry, c.CalendarEntrySeries, c.Day,
		c.DayTemplate, c.Event, c.Job, c.Message, c.PushNotification,
		c.PushSubscription, c.Routine, c.Task, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditLogMutation:
		return c.AuditLog.mutate(ctx, m)
	case *BrainDumpMutation:
		return c.BrainDump.mutate(ctx, m)
	case *CalendarEntryMutation:
		return c.CalendarEntry.mutate(ctx, m)
	case *CalendarEntrySeriesMutation:
		return c.CalendarEntrySeries.mutate(ctx, m)
	case *DayMutation:
		return c.Day.mutate(ctx, m)
	case *DayTemplateMutation:
		return c.DayTemplate.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *JobMutation:
		return c.Job.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *PushNotificationMutation:
		return c.PushNotification.mutate(ctx, m)
	case *PushSubscriptionMutation:
		return c.PushSubscription.mutate(ctx, m)
	case *RoutineMutation:
		return c.Routine.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditLogClient is a client for the AuditLog schema.
type AuditLogClient struct {
	config
}

// NewAuditLogClient returns a client for the AuditLog from the given config.
func NewAuditLogClient(c config) *AuditLogClient {
	return &AuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlog.Hooks(f(g(h())))`.
func (c *AuditLogClient) Use(hooks ...Hook) {
	c.hooks.AuditLog = append(c.hooks.AuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlog.Intercept(f(g(h())))`.
func (c *AuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLog = append(c.inters.AuditLog, interceptors...)
}

// Create returns a builder for creating a AuditLog entity.
func (c *AuditLogClient) Create() *AuditLogCreate {
	mutation := newAuditLogMutation(c.config, OpCreate)
	return &AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLog entities.
func (c *AuditLogClient) CreateBulk(builders ...*AuditLogCreate) *AuditLogCreateBulk {
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogClient) MapCreateBulk(slice any, setFunc func(*AuditLogCreate, int)) *AuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogCreateBulk{err: fmt.Errorf("calling to AuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLog.
func (c *AuditLogClient) Update() *AuditLogUpdate {
	mutation := newAuditLogMutation(c.config, OpUpdate)
	return &AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogClient) UpdateOne(_m *AuditLog) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLog(_m))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogClient) UpdateOneID(id uuid.UUID) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLogID(id))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLog.
func (c *AuditLogClient) Delete() *AuditLogDelete {
	mutation := newAuditLogMutation(c.config, OpDelete)
	return &AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogClient) DeleteOne(_m *AuditLog) *AuditLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogClient) DeleteOneID(id uuid.UUID) *AuditLogDeleteOne {
	builder := c.Delete().Where(auditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogDeleteOne{builder}
}

// Query returns a query builder for AuditLog.
func (c *AuditLogClient) Query() *AuditLogQuery {
	return &AuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLog entity by its id.
func (c *AuditLogClient) Get(ctx context.Context, id uuid.UUID) (*AuditLog, error) {
	return c.Query().Where(auditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogClient) GetX(ctx context.Context, id uuid.UUID) *AuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a AuditLog.
func (c *AuditLogClient) QueryUser(_m *AuditLog) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(auditlog.Table, auditlog.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, auditlog.UserTable, auditlog.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuditLogClient) Hooks() []Hook {
	return c.hooks.AuditLog
}

// Interceptors returns the client interceptors.
func (c *AuditLogClient) Interceptors() []Interceptor {
	return c.inters.AuditLog
}

func (c *AuditLogClient) mutate(ctx context.Context, m *AuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditLog mutation op: %q", m.Op())
	}
}

// BrainDumpClient is a client for the BrainDump schema.
type BrainDumpClient struct {
	config
}

// NewBrainDumpClient returns a client for the BrainDump from the given config.
func NewBrainDumpClient(c config) *BrainDumpClient {
	return &BrainDumpClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `braindump.Hooks(f(g(h())))`.
func (c *BrainDumpClient) Use(hooks ...Hook) {
	c.hooks.BrainDump = append(c.hooks.BrainDump, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `braindump.Intercept(f(g(h())))`.
func (c *BrainDumpClient) Intercept(interceptors ...Interceptor) {
	c.inters.BrainDump = append(c.inters.BrainDump, interceptors...)
}

// Create returns a builder for creating a BrainDump entity.
func (c *BrainDumpClient) Create() *BrainDumpCreate {
	mutation := newBrainDumpMutation(c.config, OpCreate)
	return &BrainDumpCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BrainDump entities.
func (c *BrainDumpClient) CreateBulk(builders ...*BrainDumpCreate) *BrainDumpCreateBulk {
	return &BrainDumpCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BrainDumpClient) MapCreateBulk(slice any, setFunc func(*BrainDumpCreate, int)) *BrainDumpCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BrainDumpCreateBulk{err: fmt.Errorf("calling to BrainDumpClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BrainDumpCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BrainDumpCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BrainDump.
func (c *BrainDumpClient) Update() *BrainDumpUpdate {
	mutation := newBrainDumpMutation(c.config, OpUpdate)
	return &BrainDumpUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BrainDumpClient) UpdateOne(_m *BrainDump) *BrainDumpUpdateOne {
	mutation := newBrainDumpMutation(c.config, OpUpdateOne, withBrainDump(_m))
	return &BrainDumpUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BrainDumpClient) UpdateOneID(id uuid.UUID) *BrainDumpUpdateOne {
	mutation := newBrainDumpMutation(c.config, OpUpdateOne, withBrainDumpID(id))
	return &BrainDumpUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BrainDump.
func (c *BrainDumpClient) Delete() *BrainDumpDelete {
	mutation := newBrainDumpMutation(c.config, OpDelete)
	return &BrainDumpDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BrainDumpClient) DeleteOne(_m *BrainDump) *BrainDumpDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BrainDumpClient) DeleteOneID(id uuid.UUID) *BrainDumpDeleteOne {
	builder := c.Delete().Where(braindump.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BrainDumpDeleteOne{builder}
}

// Query returns a query builder for BrainDump.
func (c *BrainDumpClient) Query() *BrainDumpQuery {
	return &BrainDumpQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBrainDump},
		inters: c.Interceptors(),
	}
}

// Get returns a BrainDump entity by its id.
func (c *BrainDumpClient) Get(ctx context.Context, id uuid.UUID) (*BrainDump, error) {
	return c.Query().Where(braindump.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BrainDumpClient) GetX(ctx context.Context, id uuid.UUID) *BrainDump {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a BrainDump.
func (c *BrainDumpClient) QueryUser(_m *BrainDump) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(braindump.Table, braindump.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, braindump.UserTable, braindump.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BrainDumpClient) Hooks() []Hook {
	return c.hooks.BrainDump
}

// Interceptors returns the client interceptors.
func (c *BrainDumpClient) Interceptors() []Interceptor {
	return c.inters.BrainDump
}

func (c *BrainDumpClient) mutate(ctx context.Context, m *BrainDumpMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BrainDumpCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BrainDumpUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BrainDumpUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BrainDumpDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BrainDump mutation op: %q", m.Op())
	}
}

// CalendarEntryClient is a client for the CalendarEntry schema.
type CalendarEntryClient struct {
	config
}

// NewCalendarEntryClient returns a client for the CalendarEntry from the given config.
func NewCalendarEntryClient(c config) *CalendarEntryClient {
	return &CalendarEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `calendarentry.Hooks(f(g(h())))`.
func (c *CalendarEntryClient) Use(hooks ...Hook) {
	c.hooks.CalendarEntry = append(c.hooks.CalendarEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `calendarentry.Intercept(f(g(h())))`.
func (c *CalendarEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.CalendarEntry = append(c.inters.CalendarEntry, interceptors...)
}

// Create returns a builder for creating a CalendarEntry entity.
func (c *CalendarEntryClient) Create() *CalendarEntryCreate {
	mutation := newCalendarEntryMutation(c.config, OpCreate)
	return &CalendarEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CalendarEntry entities.
func (c *CalendarEntryClient) CreateBulk(builders ...*CalendarEntryCreate) *CalendarEntryCreateBulk {
	return &CalendarEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CalendarEntryClient) MapCreateBulk(slice any, setFunc func(*CalendarEntryCreate, int)) *CalendarEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CalendarEntryCreateBulk{err: fmt.Errorf("calling to CalendarEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CalendarEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CalendarEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CalendarEntry.
func (c *CalendarEntryClient) Update() *CalendarEntryUpdate {
	mutation := newCalendarEntryMutation(c.config, OpUpdate)
	return &CalendarEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CalendarEntryClient) UpdateOne(_m *CalendarEntry) *CalendarEntryUpdateOne {
	mutation := newCalendarEntryMutation(c.config, OpUpdateOne, withCalendarEntry(_m))
	return &CalendarEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CalendarEntryClient) UpdateOneID(id uuid.UUID) *CalendarEntryUpdateOne {
	mutation := newCalendarEntryMutation(c.config, OpUpdateOne, withCalendarEntryID(id))
	return &CalendarEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CalendarEntry.
func (c *CalendarEntryClient) Delete() *CalendarEntryDelete {
	mutation := newCalendarEntryMutation(c.config, OpDelete)
	return &CalendarEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CalendarEntryClient) DeleteOne(_m *CalendarEntry) *CalendarEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CalendarEntryClient) DeleteOneID(id uuid.UUID) *CalendarEntryDeleteOne {
	builder := c.Delete().Where(calendarentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CalendarEntryDeleteOne{builder}
}

// Query returns a query builder for CalendarEntry.
func (c *CalendarEntryClient) Query() *CalendarEntryQuery {
	return &CalendarEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCalendarEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a CalendarEntry entity by its id.
func (c *CalendarEntryClient) Get(ctx context.Context, id uuid.UUID) (*CalendarEntry, error) {
	return c.Query().Where(calendarentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CalendarEntryClient) GetX(ctx context.Context, id uuid.UUID) *CalendarEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a CalendarEntry.
func (c *CalendarEntryClient) QueryUser(_m *CalendarEntry) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(calendarentry.Table, calendarentry.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, calendarentry.UserTable, calendarentry.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CalendarEntryClient) Hooks() []Hook {
	return c.hooks.CalendarEntry
}

// Interceptors returns the client interceptors.
func (c *CalendarEntryClient) Interceptors() []Interceptor {
	return c.inters.CalendarEntry
}

func (c *CalendarEntryClient) mutate(ctx context.Context, m *CalendarEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CalendarEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CalendarEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CalendarEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CalendarEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CalendarEntry mutation op: %q", m.Op())
	}
}

// CalendarEntrySeriesClient is a client for the CalendarEntrySeries schema.
type CalendarEntrySeriesClient struct {
	config
}

// NewCalendarEntrySeriesClient returns a client for the CalendarEntrySeries from the given config.
func NewCalendarEntrySeriesClient(c config) *CalendarEntrySeriesClient {
	return &CalendarEntrySeriesClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `calendarentryseries.Hooks(f(g(h())))`.
func (c *CalendarEntrySeriesClient) Use(hooks ...Hook) {
	c.hooks.CalendarEntrySeries = append(c.hooks.CalendarEntrySeries, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `calendarentryseries.Intercept(f(g(h())))`.
func (c *CalendarEntrySeriesClient) Intercept(interceptors ...Interceptor) {
	c.inters.CalendarEntrySeries = append(c.inters.CalendarEntrySeries, interceptors...)
}

// Create returns a builder for creating a CalendarEntrySeries entity.
func (c *CalendarEntrySeriesClient) Create() *CalendarEntrySeriesCreate {
	mutation := newCalendarEntrySeriesMutation(c.config, OpCreate)
	return &CalendarEntrySeriesCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CalendarEntrySeries entities.
func (c *CalendarEntrySeriesClient) CreateBulk(builders ...*CalendarEntrySeriesCreate) *CalendarEntrySeriesCreateBulk {
	return &CalendarEntrySeriesCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CalendarEntrySeriesClient) MapCreateBulk(slice any, setFunc func(*CalendarEntrySeriesCreate, int)) *CalendarEntrySeriesCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CalendarEntrySeriesCreateBulk{err: fmt.Errorf("calling to CalendarEntrySeriesClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CalendarEntrySeriesCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CalendarEntrySeriesCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CalendarEntrySeries.
func (c *CalendarEntrySeriesClient) Update() *CalendarEntrySeriesUpdate {
	mutation := newCalendarEntrySeriesMutation(c.config, OpUpdate)
	return &CalendarEntrySeriesUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CalendarEntrySeriesClient) UpdateOne(_m *CalendarEntrySeries) *CalendarEntrySeriesUpdateOne {
	mutation := newCalendarEntrySeriesMutation(c.config, OpUpdateOne, withCalendarEntrySeries(_m))
	return &CalendarEntrySeriesUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CalendarEntrySeriesClient) UpdateOneID(id uuid.UUID) *CalendarEntrySeriesUpdateOne {
	mutation := newCalendarEntrySeriesMutation(c.config, OpUpdateOne, withCalendarEntrySeriesID(id))
	return &CalendarEntrySeriesUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CalendarEntrySeries.
func (c *CalendarEntrySeriesClient) Delete() *CalendarEntrySeriesDelete {
	mutation := newCalendarEntrySeriesMutation(c.config, OpDelete)
	return &CalendarEntrySeriesDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CalendarEntrySeriesClient) DeleteOne(_m *CalendarEntrySeries) *CalendarEntrySeriesDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CalendarEntrySeriesClient) DeleteOneID(id uuid.UUID) *CalendarEntrySeriesDeleteOne {
	builder := c.Delete().Where(calendarentryseries.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CalendarEntrySeriesDeleteOne{builder}
}

// Query returns a query builder for CalendarEntrySeries.
func (c *CalendarEntrySeriesClient) Query() *CalendarEntrySeriesQuery {
	return &CalendarEntrySeriesQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCalendarEntrySeries},
		inters: c.Interceptors(),
	}
}

// Get returns a CalendarEntrySeries entity by its id.
func (c *CalendarEntrySeriesClient) Get(ctx context.Context, id uuid.UUID) (*CalendarEntrySeries, error) {
	return c.Query().Where(calendarentryseries.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CalendarEntrySeriesClient) GetX(ctx context.Context, id uuid.UUID) *CalendarEntrySeries {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a CalendarEntrySeries.
func (c *CalendarEntrySeriesClient) QueryUser(_m *CalendarEntrySeries) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(calendarentryseries.Table, calendarentryseries.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, calendarentryseries.UserTable, calendarentryseries.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CalendarEntrySeriesClient) Hooks() []Hook {
	return c.hooks.CalendarEntrySeries
}

// Interceptors returns the client interceptors.
func (c *CalendarEntrySeriesClient) Interceptors() []Interceptor {
	return c.inters.CalendarEntrySeries
}

func (c *CalendarEntrySeriesClient) mutate(ctx context.Context, m *CalendarEntrySeriesMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CalendarEntrySeriesCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CalendarEntrySeriesUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CalendarEntrySeriesUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CalendarEntrySeriesDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CalendarEntrySeries mutation op: %q", m.Op())
	}
}

// DayClient is a client for the Day schema.
type DayClient struct {
	config
}

// NewDayClient returns a client for the Day from the given config.
func NewDayClient(c config) *DayClient {
	return &DayClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `day.Hooks(f(g(h())))`.
func (c *DayClient) Use(hooks ...Hook) {
	c.hooks.Day = append(c.hooks.Day, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `day.Intercept(f(g(h())))`.
func (c *DayClient) Intercept(interceptors ...Interceptor) {
	c.inters.Day = append(c.inters.Day, interceptors...)
}

// Create returns a builder for creating a Day entity.
func (c *DayClient) Create() *DayCreate {
	mutation := newDayMutation(c.config, OpCreate)
	return &DayCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Day entities.
func (c *DayClient) CreateBulk(builders ...*DayCreate) *DayCreateBulk {
	return &DayCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DayClient) MapCreateBulk(slice any, setFunc func(*DayCreate, int)) *DayCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DayCreateBulk{err: fmt.Errorf("calling to DayClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DayCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DayCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Day.
func (c *DayClient) Update() *DayUpdate {
	mutation := newDayMutation(c.config, OpUpdate)
	return &DayUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DayClient) UpdateOne(_m *Day) *DayUpdateOne {
	mutation := newDayMutation(c.config, OpUpdateOne, withDay(_m))
	return &DayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DayClient) UpdateOneID(id uuid.UUID) *DayUpdateOne {
	mutation := newDayMutation(c.config, OpUpdateOne, withDayID(id))
	return &DayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Day.
func (c *DayClient) Delete() *DayDelete {
	mutation := newDayMutation(c.config, OpDelete)
	return &DayDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DayClient) DeleteOne(_m *Day) *DayDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DayClient) DeleteOneID(id uuid.UUID) *DayDeleteOne {
	builder := c.Delete().Where(day.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DayDeleteOne{builder}
}

// Query returns a query builder for Day.
func (c *DayClient) Query() *DayQuery {
	return &DayQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDay},
		inters: c.Interceptors(),
	}
}

// Get returns a Day entity by its id.
func (c *DayClient) Get(ctx context.Context, id uuid.UUID) (*Day, error) {
	return c.Query().Where(day.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DayClient) GetX(ctx context.Context, id uuid.UUID) *Day {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Day.
func (c *DayClient) QueryUser(_m *Day) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(day.Table, day.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, day.UserTable, day.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DayClient) Hooks() []Hook {
	return c.hooks.Day
}

// Interceptors returns the client interceptors.
func (c *DayClient) Interceptors() []Interceptor {
	return c.inters.Day
}

func (c *DayClient) mutate(ctx context.Context, m *DayMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DayCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DayUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DayDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Day mutation op: %q", m.Op())
	}
}

// DayTemplateClient is a client for the DayTemplate schema.
type DayTemplateClient struct {
	config
}

// NewDayTemplateClient returns a client for the DayTemplate from the given config.
func NewDayTemplateClient(c config) *DayTemplateClient {
	return &DayTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `daytemplate.Hooks(f(g(h())))`.
func (c *DayTemplateClient) Use(hooks ...Hook) {
	c.hooks.DayTemplate = append(c.hooks.DayTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `daytemplate.Intercept(f(g(h())))`.
func (c *DayTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.DayTemplate = append(c.inters.DayTemplate, interceptors...)
}

// Create returns a builder for creating a DayTemplate entity.
func (c *DayTemplateClient) Create() *DayTemplateCreate {
	mutation := newDayTemplateMutation(c.config, OpCreate)
	return &DayTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DayTemplate entities.
func (c *DayTemplateClient) CreateBulk(builders ...*DayTemplateCreate) *DayTemplateCreateBulk {
	return &DayTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DayTemplateClient) MapCreateBulk(slice any, setFunc func(*DayTemplateCreate, int)) *DayTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DayTemplateCreateBulk{err: fmt.Errorf("calling to DayTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DayTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DayTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DayTemplate.
func (c *DayTemplateClient) Update() *DayTemplateUpdate {
	mutation := newDayTemplateMutation(c.config, OpUpdate)
	return &DayTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DayTemplateClient) UpdateOne(_m *DayTemplate) *DayTemplateUpdateOne {
	mutation := newDayTemplateMutation(c.config, OpUpdateOne, withDayTemplate(_m))
	return &DayTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DayTemplateClient) UpdateOneID(id uuid.UUID) *DayTemplateUpdateOne {
	mutation := newDayTemplateMutation(c.config, OpUpdateOne, withDayTemplateID(id))
	return &DayTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DayTemplate.
func (c *DayTemplateClient) Delete() *DayTemplateDelete {
	mutation := newDayTemplateMutation(c.config, OpDelete)
	return &DayTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DayTemplateClient) DeleteOne(_m *DayTemplate) *DayTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DayTemplateClient) DeleteOneID(id uuid.UUID) *DayTemplateDeleteOne {
	builder := c.Delete().Where(daytemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DayTemplateDeleteOne{builder}
}

// Query returns a query builder for DayTemplate.
func (c *DayTemplateClient) Query() *DayTemplateQuery {
	return &DayTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDayTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a DayTemplate entity by its id.
func (c *DayTemplateClient) Get(ctx context.Context, id uuid.UUID) (*DayTemplate, error) {
	return c.Query().Where(daytemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DayTemplateClient) GetX(ctx context.Context, id uuid.UUID) *DayTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a DayTemplate.
func (c *DayTemplateClient) QueryUser(_m *DayTemplate) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(daytemplate.Table, daytemplate.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, daytemplate.UserTable, daytemplate.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DayTemplateClient) Hooks() []Hook {
	return c.hooks.DayTemplate
}

// Interceptors returns the client interceptors.
func (c *DayTemplateClient) Interceptors() []Interceptor {
	return c.inters.DayTemplate
}

func (c *DayTemplateClient) mutate(ctx context.Context, m *DayTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DayTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DayTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DayTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DayTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DayTemplate mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// JobClient is a client for the Job schema.
type JobClient struct {
	config
}

// NewJobClient returns a client for the Job from the given config.
func NewJobClient(c config) *JobClient {
	return &JobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `job.Hooks(f(g(h())))`.
func (c *JobClient) Use(hooks ...Hook) {
	c.hooks.Job = append(c.hooks.Job, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `job.Intercept(f(g(h())))`.
func (c *JobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Job = append(c.inters.Job, interceptors...)
}

// Create returns a builder for creating a Job entity.
func (c *JobClient) Create() *JobCreate {
	mutation := newJobMutation(c.config, OpCreate)
	return &JobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Job entities.
func (c *JobClient) CreateBulk(builders ...*JobCreate) *JobCreateBulk {
	return &JobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobClient) MapCreateBulk(slice any, setFunc func(*JobCreate, int)) *JobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobCreateBulk{err: fmt.Errorf("calling to JobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Job.
func (c *JobClient) Update() *JobUpdate {
	mutation := newJobMutation(c.config, OpUpdate)
	return &JobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobClient) UpdateOne(_m *Job) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJob(_m))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobClient) UpdateOneID(id uuid.UUID) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJobID(id))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Job.
func (c *JobClient) Delete() *JobDelete {
	mutation := newJobMutation(c.config, OpDelete)
	return &JobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobClient) DeleteOne(_m *Job) *JobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobClient) DeleteOneID(id uuid.UUID) *JobDeleteOne {
	builder := c.Delete().Where(job.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDeleteOne{builder}
}

// Query returns a query builder for Job.
func (c *JobClient) Query() *JobQuery {
	return &JobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJob},
		inters: c.Interceptors(),
	}
}

// Get returns a Job entity by its id.
func (c *JobClient) Get(ctx context.Context, id uuid.UUID) (*Job, error) {
	return c.Query().Where(job.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobClient) GetX(ctx context.Context, id uuid.UUID) *Job {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *JobClient) Hooks() []Hook {
	return c.hooks.Job
}

// Interceptors returns the client interceptors.
func (c *JobClient) Interceptors() []Interceptor {
	return c.inters.Job
}

func (c *JobClient) mutate(ctx context.Context, m *JobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Job mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id uuid.UUID) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id uuid.UUID) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id uuid.UUID) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id uuid.UUID) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Message.
func (c *MessageClient) QueryUser(_m *Message) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(message.Table, message.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, message.UserTable, message.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Message mutation op: %q", m.Op())
	}
}

// PushNotificationClient is a client for the PushNotification schema.
type PushNotificationClient struct {
	config
}

// NewPushNotificationClient returns a client for the PushNotification from the given config.
func NewPushNotificationClient(c config) *PushNotificationClient {
	return &PushNotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pushnotification.Hooks(f(g(h())))`.
func (c *PushNotificationClient) Use(hooks ...Hook) {
	c.hooks.PushNotification = append(c.hooks.PushNotification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pushnotification.Intercept(f(g(h())))`.
func (c *PushNotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.PushNotification = append(c.inters.PushNotification, interceptors...)
}

// Create returns a builder for creating a PushNotification entity.
func (c *PushNotificationClient) Create() *PushNotificationCreate {
	mutation := newPushNotificationMutation(c.config, OpCreate)
	return &PushNotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PushNotification entities.
func (c *PushNotificationClient) CreateBulk(builders ...*PushNotificationCreate) *PushNotificationCreateBulk {
	return &PushNotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PushNotificationClient) MapCreateBulk(slice any, setFunc func(*PushNotificationCreate, int)) *PushNotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PushNotificationCreateBulk{err: fmt.Errorf("calling to PushNotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PushNotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PushNotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PushNotification.
func (c *PushNotificationClient) Update() *PushNotificationUpdate {
	mutation := newPushNotificationMutation(c.config, OpUpdate)
	return &PushNotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PushNotificationClient) UpdateOne(_m *PushNotification) *PushNotificationUpdateOne {
	mutation := newPushNotificationMutation(c.config, OpUpdateOne, withPushNotification(_m))
	return &PushNotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PushNotificationClient) UpdateOneID(id uuid.UUID) *PushNotificationUpdateOne {
	mutation := newPushNotificationMutation(c.config, OpUpdateOne, withPushNotificationID(id))
	return &PushNotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PushNotification.
func (c *PushNotificationClient) Delete() *PushNotificationDelete {
	mutation := newPushNotificationMutation(c.config, OpDelete)
	return &PushNotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PushNotificationClient) DeleteOne(_m *PushNotification) *PushNotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PushNotificationClient) DeleteOneID(id uuid.UUID) *PushNotificationDeleteOne {
	builder := c.Delete().Where(pushnotification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PushNotificationDeleteOne{builder}
}

// Query returns a query builder for PushNotification.
func (c *PushNotificationClient) Query() *PushNotificationQuery {
	return &PushNotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePushNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a PushNotification entity by its id.
func (c *PushNotificationClient) Get(ctx context.Context, id uuid.UUID) (*PushNotification, error) {
	return c.Query().Where(pushnotification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PushNotificationClient) GetX(ctx context.Context, id uuid.UUID) *PushNotification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a PushNotification.
func (c *PushNotificationClient) QueryUser(_m *PushNotification) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pushnotification.Table, pushnotification.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pushnotification.UserTable, pushnotification.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PushNotificationClient) Hooks() []Hook {
	return c.hooks.PushNotification
}

// Interceptors returns the client interceptors.
func (c *PushNotificationClient) Interceptors() []Interceptor {
	return c.inters.PushNotification
}

func (c *PushNotificationClient) mutate(ctx context.Context, m *PushNotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PushNotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PushNotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PushNotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PushNotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PushNotification mutation op: %q", m.Op())
	}
}

// PushSubscriptionClient is a client for the PushSubscription schema.
type PushSubscriptionClient struct {
	config
}

// NewPushSubscriptionClient returns a client for the PushSubscription from the given config.
func NewPushSubscriptionClient(c config) *PushSubscriptionClient {
	return &PushSubscriptionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pushsubscription.Hooks(f(g(h())))`.
func (c *PushSubscriptionClient) Use(hooks ...Hook) {
	c.hooks.PushSubscription = append(c.hooks.PushSubscription, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pushsubscription.Intercept(f(g(h())))`.
func (c *PushSubscriptionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PushSubscription = append(c.inters.PushSubscription, interceptors...)
}

// Create returns a builder for creating a PushSubscription entity.
func (c *PushSubscriptionClient) Create() *PushSubscriptionCreate {
	mutation := newPushSubscriptionMutation(c.config, OpCreate)
	return &PushSubscriptionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PushSubscription entities.
func (c *PushSubscriptionClient) CreateBulk(builders ...*PushSubscriptionCreate) *PushSubscriptionCreateBulk {
	return &PushSubscriptionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PushSubscriptionClient) MapCreateBulk(slice any, setFunc func(*PushSubscriptionCreate, int)) *PushSubscriptionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PushSubscriptionCreateBulk{err: fmt.Errorf("calling to PushSubscriptionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PushSubscriptionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PushSubscriptionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PushSubscription.
func (c *PushSubscriptionClient) Update() *PushSubscriptionUpdate {
	mutation := newPushSubscriptionMutation(c.config, OpUpdate)
	return &PushSubscriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PushSubscriptionClient) UpdateOne(_m *PushSubscription) *PushSubscriptionUpdateOne {
	mutation := newPushSubscriptionMutation(c.config, OpUpdateOne, withPushSubscription(_m))
	return &PushSubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PushSubscriptionClient) UpdateOneID(id uuid.UUID) *PushSubscriptionUpdateOne {
	mutation := newPushSubscriptionMutation(c.config, OpUpdateOne, withPushSubscriptionID(id))
	return &PushSubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PushSubscription.
func (c *PushSubscriptionClient) Delete() *PushSubscriptionDelete {
	mutation := newPushSubscriptionMutation(c.config, OpDelete)
	return &PushSubscriptionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PushSubscriptionClient) DeleteOne(_m *PushSubscription) *PushSubscriptionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PushSubscriptionClient) DeleteOneID(id uuid.UUID) *PushSubscriptionDeleteOne {
	builder := c.Delete().Where(pushsubscription.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PushSubscriptionDeleteOne{builder}
}

// Query returns a query builder for PushSubscription.
func (c *PushSubscriptionClient) Query() *PushSubscriptionQuery {
	return &PushSubscriptionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePushSubscription},
		inters: c.Interceptors(),
	}
}

// Get returns a PushSubscription entity by its id.
func (c *PushSubscriptionClient) Get(ctx context.Context, id uuid.UUID) (*PushSubscription, error) {
	return c.Query().Where(pushsubscription.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PushSubscriptionClient) GetX(ctx context.Context, id uuid.UUID) *PushSubscription {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a PushSubscription.
func (c *PushSubscriptionClient) QueryUser(_m *PushSubscription) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pushsubscription.Table, pushsubscription.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pushsubscription.UserTable, pushsubscription.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PushSubscriptionClient) Hooks() []Hook {
	return c.hooks.PushSubscription
}

// Interceptors returns the client interceptors.
func (c *PushSubscriptionClient) Interceptors() []Interceptor {
	return c.inters.PushSubscription
}

func (c *PushSubscriptionClient) mutate(ctx context.Context, m *PushSubscriptionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PushSubscriptionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PushSubscriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PushSubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PushSubscriptionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PushSubscription mutation op: %q", m.Op())
	}
}

// RoutineClient is a client for the Routine schema.
type RoutineClient struct {
	config
}

// NewRoutineClient returns a client for the Routine from the given config.
func NewRoutineClient(c config) *RoutineClient {
	return &RoutineClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `routine.Hooks(f(g(h())))`.
func (c *RoutineClient) Use(hooks ...Hook) {
	c.hooks.Routine = append(c.hooks.Routine, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `routine.Intercept(f(g(h())))`.
func (c *RoutineClient) Intercept(interceptors ...Interceptor) {
	c.inters.Routine = append(c.inters.Routine, interceptors...)
}

// Create returns a builder for creating a Routine entity.
func (c *RoutineClient) Create() *RoutineCreate {
	mutation := newRoutineMutation(c.config, OpCreate)
	return &RoutineCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Routine entities.
func (c *RoutineClient) CreateBulk(builders ...*RoutineCreate) *RoutineCreateBulk {
	return &RoutineCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RoutineClient) MapCreateBulk(slice any, setFunc func(*RoutineCreate, int)) *RoutineCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RoutineCreateBulk{err: fmt.Errorf("calling to RoutineClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RoutineCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RoutineCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Routine.
func (c *RoutineClient) Update() *RoutineUpdate {
	mutation := newRoutineMutation(c.config, OpUpdate)
	return &RoutineUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RoutineClient) UpdateOne(_m *Routine) *RoutineUpdateOne {
	mutation := newRoutineMutation(c.config, OpUpdateOne, withRoutine(_m))
	return &RoutineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RoutineClient) UpdateOneID(id uuid.UUID) *RoutineUpdateOne {
	mutation := newRoutineMutation(c.config, OpUpdateOne, withRoutineID(id))
	return &RoutineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Routine.
func (c *RoutineClient) Delete() *RoutineDelete {
	mutation := newRoutineMutation(c.config, OpDelete)
	return &RoutineDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RoutineClient) DeleteOne(_m *Routine) *RoutineDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RoutineClient) DeleteOneID(id uuid.UUID) *RoutineDeleteOne {
	builder := c.Delete().Where(routine.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RoutineDeleteOne{builder}
}

// Query returns a query builder for Routine.
func (c *RoutineClient) Query() *RoutineQuery {
	return &RoutineQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRoutine},
		inters: c.Interceptors(),
	}
}

// Get returns a Routine entity by its id.
func (c *RoutineClient) Get(ctx context.Context, id uuid.UUID) (*Routine, error) {
	return c.Query().Where(routine.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RoutineClient) GetX(ctx context.Context, id uuid.UUID) *Routine {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Routine.
func (c *RoutineClient) QueryUser(_m *Routine) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(routine.Table, routine.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, routine.UserTable, routine.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RoutineClient) Hooks() []Hook {
	return c.hooks.Routine
}

// Interceptors returns the client interceptors.
func (c *RoutineClient) Interceptors() []Interceptor {
	return c.inters.Routine
}

func (c *RoutineClient) mutate(ctx context.Context, m *RoutineMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RoutineCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RoutineUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RoutineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RoutineDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Routine mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id uuid.UUID) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id uuid.UUID) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id uuid.UUID) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id uuid.UUID) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Task.
func (c *TaskClient) QueryUser(_m *Task) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, task.UserTable, task.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDays queries the days edge of a User.
func (c *UserClient) QueryDays(_m *User) *DayQuery {
	query := (&DayClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(day.Table, day.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.DaysTable, user.DaysColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTasks queries the tasks edge of a User.
func (c *UserClient) QueryTasks(_m *User) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.TasksTable, user.TasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRoutines queries the routines edge of a User.
func (c *UserClient) QueryRoutines(_m *User) *RoutineQuery {
	query := (&RoutineClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(routine.Table, routine.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.RoutinesTable, user.RoutinesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDayTemplates queries the day_templates edge of a User.
func (c *UserClient) QueryDayTemplates(_m *User) *DayTemplateQuery {
	query := (&DayTemplateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(daytemplate.Table, daytemplate.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.DayTemplatesTable, user.DayTemplatesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCalendarEntries queries the calendar_entries edge of a User.
func (c *UserClient) QueryCalendarEntries(_m *User) *CalendarEntryQuery {
	query := (&CalendarEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(calendarentry.Table, calendarentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.CalendarEntriesTable, user.CalendarEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCalendarEntrySeries queries the calendar_entry_series edge of a User.
func (c *UserClient) QueryCalendarEntrySeries(_m *User) *CalendarEntrySeriesQuery {
	query := (&CalendarEntrySeriesClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(calendarentryseries.Table, calendarentryseries.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.CalendarEntrySeriesTable, user.CalendarEntrySeriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a User.
func (c *UserClient) QueryMessages(_m *User) *MessageQuery {
	query := (&MessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.MessagesTable, user.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPushSubscriptions queries the push_subscriptions edge of a User.
func (c *UserClient) QueryPushSubscriptions(_m *User) *PushSubscriptionQuery {
	query := (&PushSubscriptionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(pushsubscription.Table, pushsubscription.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.PushSubscriptionsTable, user.PushSubscriptionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPushNotifications queries the push_notifications edge of a User.
func (c *UserClient) QueryPushNotifications(_m *User) *PushNotificationQuery {
	query := (&PushNotificationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(pushnotification.Table, pushnotification.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.PushNotificationsTable, user.PushNotificationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBrainDumps queries the brain_dumps edge of a User.
func (c *UserClient) QueryBrainDumps(_m *User) *BrainDumpQuery {
	query := (&BrainDumpClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(braindump.Table, braindump.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.BrainDumpsTable, user.BrainDumpsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAuditLogs queries the audit_logs edge of a User.
func (c *UserClient) QueryAuditLogs(_m *User) *AuditLogQuery {
	query := (&AuditLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(auditlog.Table, auditlog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.AuditLogsTable, user.AuditLogsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AuditLog, BrainDump, CalendarEntry, CalendarEntrySeries, Day, DayTemplate,
		Event, Job, Message, PushNotification, PushSubscription, Routine, Task,
		User []ent.Hook
	}
	inters struct {
		AuditLog, BrainDump, CalendarEntry, CalendarEntrySeries, Day, DayTemplate,
		Event, Job, Message, PushNotification, PushSubscription, Routine, Task,
		User []ent.Interceptor
	}
)
