package escalation

import (
	"io"

	"github.com/famcare/health-engine/pkg/types"

	yaml "gopkg.in/yaml.v2"
)

type Config struct {
	Policies []types.EscalationPolicy `yaml:"policies"`
}

func NewConfig(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultConfig holds the built-in escalation ladders. Each policy
// claims one or more alert types, levels fire in order with the
// configured delay between them and widen the circle of people that
// are notified.
func DefaultConfig() *Config {
	return &Config{
		Policies: []types.EscalationPolicy{
			{
				ID:         "critical_vital",
				Name:       "Critical vital signs",
				AlertTypes: []string{"vital_critical"},
				Levels: []types.EscalationLevel{
					{Level: 1, DelayMinutes: 0, NotifyRoles: []string{types.NotifyRoleCaregiver}, Action: "notify", Message: "A critical vital sign was detected"},
					{Level: 2, DelayMinutes: 5, NotifyRoles: []string{types.NotifyRoleCaregiver, types.NotifyRoleSecondaryContact}, Action: "alarm", Message: "A critical vital sign has not been acknowledged"},
					{Level: 3, DelayMinutes: 10, NotifyRoles: []string{types.NotifyRoleCaregiver, types.NotifyRoleSecondaryContact, types.NotifyRoleEmergency}, Action: "emergency", Message: "A critical vital sign is still unacknowledged, emergency contacts are being notified"},
				},
			},
			{
				ID:         "abnormal_vital",
				Name:       "Abnormal vital signs",
				AlertTypes: []string{"vital_abnormal"},
				Levels: []types.EscalationLevel{
					{Level: 1, DelayMinutes: 0, NotifyRoles: []string{types.NotifyRoleCaregiver}, Action: "notify", Message: "An abnormal vital sign was detected"},
					{Level: 2, DelayMinutes: 15, NotifyRoles: []string{types.NotifyRoleCaregiver, types.NotifyRoleSecondaryContact}, Action: "notify", Message: "An abnormal vital sign has not been acknowledged"},
				},
			},
			{
				ID:         "device_offline",
				Name:       "Health device offline",
				AlertTypes: []string{"device_offline"},
				Levels: []types.EscalationLevel{
					{Level: 1, DelayMinutes: 0, NotifyRoles: []string{types.NotifyRoleCaregiver}, Action: "notify", Message: "A health device appears to be offline"},
					{Level: 2, DelayMinutes: 30, NotifyRoles: []string{types.NotifyRoleCaregiver, types.NotifyRoleSecondaryContact}, Action: "notify", Message: "A health device has been offline for a while"},
				},
			},
			{
				ID:         "missed_checkin",
				Name:       "Missed check in",
				AlertTypes: []string{"missed_checkin"},
				Levels: []types.EscalationLevel{
					{Level: 1, DelayMinutes: 0, NotifyRoles: []string{types.NotifyRoleCaregiver}, Action: "notify", Message: "A scheduled check in was missed"},
					{Level: 2, DelayMinutes: 15, NotifyRoles: []string{types.NotifyRoleCaregiver, types.NotifyRoleSecondaryContact}, Action: "alarm", Message: "A scheduled check in is still missing"},
					{Level: 3, DelayMinutes: 30, NotifyRoles: []string{types.NotifyRoleCaregiver, types.NotifyRoleSecondaryContact, types.NotifyRoleEmergency}, Action: "emergency", Message: "No contact has been made, emergency contacts are being notified"},
				},
			},
		},
	}
}
