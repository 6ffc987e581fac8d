package bill

import "github.com/billed-app/billed/internal/storeclient"

// Bill statuses as the remote store records them
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRefused  = "refused"
)

// ExpenseTypes is the fixed category set offered by the new bill form
var ExpenseTypes = []string{
	"Transports",
	"Restaurants et bars",
	"Hôtel et logement",
	"Services en ligne",
	"IT et électronique",
	"Equipement et matériel",
	"Fournitures de bureau",
}

// User is the logged-in identity held by the session store
type User struct {
	Type  string `json:"type"`
	Email string `json:"email"`
}

// Bill is an expense claim assembled from the new bill form. Amount is nil
// when the user's input did not parse as an integer; FileURL and FileName are
// nil until a receipt has been staged.
type Bill struct {
	Email      string  `json:"email"`
	Type       string  `json:"type"`
	Name       string  `json:"name"`
	Amount     *int    `json:"amount,omitempty"`
	Date       string  `json:"date"`
	VAT        string  `json:"vat"`
	Pct        int     `json:"pct"`
	Commentary string  `json:"commentary"`
	FileURL    *string `json:"fileUrl"`
	FileName   *string `json:"fileName"`
	Status     string  `json:"status"`
}

// DisplayBill is a stored bill with its date and status replaced by
// human-readable forms, used only for rendering
type DisplayBill storeclient.RawBill
