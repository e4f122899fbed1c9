package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	UserID       string
	VitalType    string
	AlertID      string
	EscalationID string
	FamilyID     string
	Status       []string
	Category     string

	DueBefore time.Time
	Since     time.Time

	sortBy    string
	sortOrder string

	offset *int
	limit  *int
}

func (c Condition) Offset() int {
	if c.offset != nil {
		return *c.offset
	}
	return 0
}

func (c Condition) Limit() int {
	if c.limit != nil {
		return *c.limit
	}
	return 0
}

func (c Condition) SortBy() string {
	return c.sortBy
}

func (c Condition) SortOrder() string {
	if c.sortOrder == "" {
		return "ASC"
	}
	return c.sortOrder
}

func (c Condition) OffsetLimit() string {
	offsetLimit := ""

	if c.offset != nil {
		offsetLimit += fmt.Sprintf("OFFSET %d ", *c.offset)
	}
	if c.limit != nil {
		offsetLimit += fmt.Sprintf("LIMIT %d ", *c.limit)
	}

	return offsetLimit
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.UserID != "" {
		args["user_id"] = c.UserID
	}
	if c.VitalType != "" {
		args["vital_type"] = c.VitalType
	}
	if c.AlertID != "" {
		args["alert_id"] = c.AlertID
	}
	if c.EscalationID != "" {
		args["escalation_id"] = c.EscalationID
	}
	if c.FamilyID != "" {
		args["family_id"] = c.FamilyID
	}
	if len(c.Status) > 0 {
		args["status"] = c.Status
	}
	if c.Category != "" {
		args["category"] = c.Category
	}
	if !c.DueBefore.IsZero() {
		args["due_before"] = c.DueBefore
	}
	if !c.Since.IsZero() {
		args["since"] = c.Since
	}

	return args
}

func (c Condition) Where() string {
	where := []string{}

	if c.UserID != "" {
		where = append(where, "user_id = @user_id")
	}
	if c.VitalType != "" {
		where = append(where, "vital_type = @vital_type")
	}
	if c.AlertID != "" {
		where = append(where, "alert_id = @alert_id")
	}
	if c.EscalationID != "" {
		where = append(where, "escalation_id = @escalation_id")
	}
	if c.FamilyID != "" {
		where = append(where, "family_id = @family_id")
	}
	if len(c.Status) > 0 {
		where = append(where, "status = ANY(@status)")
	}
	if c.Category != "" {
		where = append(where, "category = @category")
	}
	if !c.DueBefore.IsZero() {
		where = append(where, "next_escalation_at <= @due_before")
	}
	if !c.Since.IsZero() {
		where = append(where, "time >= @since")
	}

	if len(where) == 0 {
		return "TRUE"
	}

	return strings.Join(where, " AND ")
}

func WithUserID(userID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.UserID = userID
		return c
	}
}

func WithVitalType(vitalType string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.VitalType = vitalType
		return c
	}
}

func WithAlertID(alertID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AlertID = alertID
		return c
	}
}

func WithEscalationID(escalationID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.EscalationID = escalationID
		return c
	}
}

func WithFamilyID(familyID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.FamilyID = familyID
		return c
	}
}

func WithStatus(status ...string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Status = status
		return c
	}
}

func WithCategory(category string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Category = category
		return c
	}
}

func WithDueBefore(ts time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.DueBefore = ts
		return c
	}
}

func WithSince(ts time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Since = ts
		return c
	}
}

func WithSortBy(sortBy string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.sortBy = sortBy
		return c
	}
}

func WithSortDesc(desc bool) ConditionFunc {
	return func(c *Condition) *Condition {
		if desc {
			c.sortOrder = "DESC"
		} else {
			c.sortOrder = "ASC"
		}
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}
