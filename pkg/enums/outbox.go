package enums

// OutboxEventType enumerates the domain events written to the outbox.
type OutboxEventType string

const (
	EventOrderPlaced   OutboxEventType = "order.placed"
	EventShiftRecorded OutboxEventType = "shift.recorded"
	EventShiftDeleted  OutboxEventType = "shift.deleted"
)

// OutboxAggregateType names the aggregate an outbox event belongs to.
type OutboxAggregateType string

const (
	AggregateOrder     OutboxAggregateType = "order"
	AggregateWorkShift OutboxAggregateType = "work_shift"
)
