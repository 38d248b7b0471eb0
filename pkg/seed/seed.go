// Package seed provides the fixed demo data loaded at startup so the
// dashboard can render without a live backend. It stands in for the real
// ingestion pipeline that scans email and calendar.
package seed

import (
	"time"

	"github.com/AFTLlimited25/Task-AI/pkg/model"
	"github.com/AFTLlimited25/Task-AI/pkg/store"
)

// Data is one coherent demo dataset with all timestamps relative to Now.
type Data struct {
	User          model.User
	Tasks         []model.Task
	Notifications []model.Notification
}

// Apply seeds a store the way the app bootstrap does: user first, then
// notifications, then tasks.
func (d Data) Apply(st *store.Store) {
	user := d.User
	st.Apply(store.SetUser{User: &user})
	for _, n := range d.Notifications {
		st.Apply(store.AddNotification{Notification: n})
	}
	for _, t := range d.Tasks {
		st.Apply(store.AddTask{Task: t})
	}
}

// Demo builds the sample dataset anchored at now.
func Demo(now time.Time) Data {
	day := func(n int) time.Time { return now.Add(time.Duration(n) * 24 * time.Hour) }
	ptr := func(t time.Time) *time.Time { return &t }

	emails := []model.RelatedEmail{
		{
			ID:         "e1",
			Subject:    "Your Netflix Subscription",
			Sender:     "info@netflix.com",
			ReceivedAt: day(-3),
			Snippet:    "Your monthly subscription will renew on June 15th. Click here to review your plan",
			IsRead:     true,
		},
		{
			ID:         "e2",
			Subject:    "Appointment Confirmation - Dr. Wilson",
			Sender:     "appointments@cityhealth.com",
			ReceivedAt: day(-5),
			Snippet:    "This email confirms your appointment with Dr. Wilson on June 20th at 2:30 PM",
			IsRead:     true,
		},
		{
			ID:         "e3",
			Subject:    "Flight Cancellation Refund Status",
			Sender:     "support@airline.com",
			ReceivedAt: day(-10),
			Snippet:    "We are processing your refund for flight AB123. Estimated processing time is 5-7 business days",
			IsRead:     false,
		},
	}

	dentist := model.RelatedEvent{
		ID:        "ev1",
		Title:     "Dentist Appointment",
		StartTime: day(7),
		EndTime:   day(7).Add(time.Hour),
		Location:  "Smile Dental Clinic, 123 Main St",
		Attendees: []string{"Dr. Johnson", "Jane Smith"},
	}

	tasks := []model.Task{
		{
			ID:            "1",
			Title:         "Cancel Netflix Subscription",
			Description:   "Need to cancel Netflix subscription before the next billing cycle on June 15th to avoid being charged.",
			Type:          model.TypeSubscription,
			Status:        model.StatusPending,
			Priority:      model.PriorityMedium,
			DueDate:       ptr(day(5)),
			CreatedAt:     day(-2),
			UpdatedAt:     day(-2),
			RelatedEmails: []model.RelatedEmail{emails[0]},
			Actions: []model.TaskAction{
				{
					ID: "a1", TaskID: "1", Type: model.ActionSendEmail, Status: model.ActionPending,
					Details: model.SendEmailDetails{
						Recipient: "support@netflix.com",
						Subject:   "Cancel Subscription",
						Body:      "I would like to cancel my subscription effective immediately.",
					},
				},
				{
					ID: "a2", TaskID: "1", Type: model.ActionCheckStatus, Status: model.ActionPending,
					ScheduledFor: ptr(day(2)),
					Details:      model.CheckStatusDetails{CheckType: "subscription_status"},
				},
			},
		},
		{
			ID:            "2",
			Title:         "Confirm Doctor Appointment",
			Description:   "Call the clinic to confirm my appointment with Dr. Wilson and ask about parking options.",
			Type:          model.TypeAppointment,
			Status:        model.StatusPending,
			Priority:      model.PriorityHigh,
			DueDate:       ptr(day(1)),
			CreatedAt:     day(-5),
			UpdatedAt:     day(-3),
			RelatedEmails: []model.RelatedEmail{emails[1]},
			Actions: []model.TaskAction{
				{
					ID: "a3", TaskID: "2", Type: model.ActionMakeCall, Status: model.ActionPending,
					Details: model.MakeCallDetails{
						PhoneNumber: "555-123-4567",
						Notes:       "Ask about parking options and confirm appointment time",
					},
				},
			},
		},
		{
			ID:            "3",
			Title:         "Follow up on Flight Refund",
			Description:   "Need to check the status of my refund for the canceled flight AB123 that was supposed to be processed within 7 business days.",
			Type:          model.TypeRefund,
			Status:        model.StatusInProgress,
			Priority:      model.PriorityMedium,
			CreatedAt:     day(-8),
			UpdatedAt:     day(-2),
			RelatedEmails: []model.RelatedEmail{emails[2]},
			Actions: []model.TaskAction{
				{
					ID: "a4", TaskID: "3", Type: model.ActionSendEmail, Status: model.ActionCompleted,
					CompletedAt: ptr(day(-2)),
					Details: model.SendEmailDetails{
						Recipient: "support@airline.com",
						Subject:   "Refund Status Inquiry - Flight AB123",
						Body:      "I am writing to inquire about the status of my refund for flight AB123 that was canceled.",
					},
				},
				{
					ID: "a5", TaskID: "3", Type: model.ActionCheckStatus, Status: model.ActionPending,
					ScheduledFor: ptr(day(1)),
					Details:      model.CheckStatusDetails{CheckType: "refund_status"},
				},
			},
		},
		{
			ID:            "4",
			Title:         "Schedule Dentist Appointment",
			Description:   "Need to schedule my bi-annual dental cleaning and checkup.",
			Type:          model.TypeAppointment,
			Status:        model.StatusCompleted,
			Priority:      model.PriorityLow,
			CreatedAt:     day(-10),
			UpdatedAt:     day(-7),
			CompletedAt:   ptr(day(-7)),
			RelatedEvents: []model.RelatedEvent{dentist},
			Actions: []model.TaskAction{
				{
					ID: "a6", TaskID: "4", Type: model.ActionScheduleEvent, Status: model.ActionCompleted,
					CompletedAt: ptr(day(-7)),
					Details: model.ScheduleEventDetails{
						Title:    dentist.Title,
						Start:    dentist.StartTime,
						End:      dentist.EndTime,
						Location: dentist.Location,
					},
				},
			},
		},
		{
			ID:          "5",
			Title:       "Remind Sam about Lunch Next Week",
			Description: "Need to follow up with Sam about our lunch plans next week on Thursday.",
			Type:        model.TypeReminder,
			Status:      model.StatusWaitingResponse,
			Priority:    model.PriorityLow,
			DueDate:     ptr(day(3)),
			CreatedAt:   day(-1),
			UpdatedAt:   day(-1),
			Actions: []model.TaskAction{
				{
					ID: "a7", TaskID: "5", Type: model.ActionSendEmail, Status: model.ActionCompleted,
					CompletedAt: ptr(day(-1)),
					Details: model.SendEmailDetails{
						Recipient: "sam@example.com",
						Subject:   "Lunch Next Thursday?",
						Body:      "Just checking in about our lunch plans for next Thursday. Are we still on for noon?",
					},
				},
				{
					ID: "a8", TaskID: "5", Type: model.ActionCheckStatus, Status: model.ActionPending,
					ScheduledFor: ptr(day(1)),
					Details:      model.CheckStatusDetails{CheckType: "email_response"},
				},
			},
		},
		{
			ID:          "6",
			Title:       "Pay Water Bill",
			Description: "The water bill is due by the end of the month. Need to pay it online.",
			Type:        model.TypeReminder,
			Status:      model.StatusPending,
			Priority:    model.PriorityHigh,
			DueDate:     ptr(day(10)),
			CreatedAt:   day(-2),
			UpdatedAt:   day(-2),
			Actions: []model.TaskAction{
				{
					ID: "a9", TaskID: "6", Type: model.ActionCustom, Status: model.ActionPending,
					ScheduledFor: ptr(day(5)),
					Details: model.CustomDetails{
						Kind: "payment",
						Fields: map[string]string{
							"payment_url": "https://water.cityutilities.com",
							"amount":      "$42.50",
						},
					},
				},
			},
		},
	}

	notifications := []model.Notification{
		{
			ID:            "n1",
			Type:          model.NotifySuccess,
			Message:       "Successfully scheduled dentist appointment",
			Timestamp:     day(-7),
			IsRead:        true,
			RelatedTaskID: "4",
		},
		{
			ID:            "n2",
			Type:          model.NotifyInfo,
			Message:       "Email sent to airline support about refund",
			Timestamp:     day(-2),
			IsRead:        false,
			RelatedTaskID: "3",
		},
		{
			ID:            "n3",
			Type:          model.NotifyWarning,
			Message:       "Netflix subscription renews in 5 days",
			Timestamp:     day(-1),
			IsRead:        false,
			RelatedTaskID: "1",
		},
	}

	return Data{
		User: model.User{
			ID:     "1",
			Name:   "Jane Smith",
			Email:  "jane.smith@example.com",
			Avatar: "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg",
		},
		Tasks:         tasks,
		Notifications: notifications,
	}
}
