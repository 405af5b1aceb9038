// Package model holds the GORM table mappings.
package model

// All lists every model, in migration order.
func All() []any {
	return []any{
		&ClientModel{},
		&CoachClientModel{},
		&AlertPreferenceModel{},
		&PushSubscriptionModel{},
		&NotificationRuleModel{},
		&DispatchRecordModel{},
	}
}
