package schemas

import (
	"github.com/dmitrymomot/schemakit/pkg/sanitizer"
	v "github.com/dmitrymomot/schemakit/pkg/validator"
)

// ContactMessage is the typed output of the contact schema.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Channel string `json:"channel"`
}

var cleanMessage = sanitizer.Compose(
	sanitizer.RemoveControlChars,
	sanitizer.StripHTML,
	sanitizer.Trim,
)

// Contact validates a contact form into a ContactMessage. Unknown fields are dropped.
func Contact() *v.RecordValidator[ContactMessage] {
	return v.Record[ContactMessage](v.Schema{
		"name":  v.Text().Trim().NullifyEmpty().Required().MaxLength(100),
		"email": v.Text().Pipe(v.Strings(sanitizer.NormalizeEmail)).NullifyEmpty().Required().Email(),
		"phone": v.Text().
			Pipe(v.Strings(sanitizer.NormalizePhone)).
			NullifyEmpty().
			Pattern(`^\+?\d{7,15}$`, "must be a valid phone number"),
		"subject": v.Text().
			Pipe(v.Strings(sanitizer.SingleLine)).
			NullifyEmpty().
			Required().
			MaxLength(120),
		"message": v.Text().
			Pipe(v.Strings(cleanMessage)).
			NullifyEmpty().
			Required().
			MinLength(10).
			MaxLength(5000),
		"channel": v.Text().
			Trim().
			Lower().
			NullifyEmpty().
			Default("email").
			OneOf([]string{"email", "phone"}),
	}).Use(v.Rule{
		Check: v.PredicateFunc(func(value any, _ v.Field) bool {
			record, ok := value.(map[string]any)
			return !ok || record["channel"] != "phone" || record["phone"] != nil
		}),
		Message: "phone is required when channel is phone",
	})
}
