// models/enquiry.go
package models

// CampaignPlan groups the schedule and the three screen/rate/plan line-item
// triples (residential, corporate, outdoor). It is embedded twice on Enquiry:
// once for the actual campaign and once, t_-prefixed, for the target plan.
//
// All values arrive as form text. Date and numeric fields are pointers so a
// blank submission stores NULL, never an empty string.
type CampaignPlan struct {
	StartDate *string `gorm:"column:start_date" json:"start_date"`
	EndDate   *string `gorm:"column:end_date" json:"end_date"`
	Duration  *string `gorm:"column:duration" json:"duration"`

	ResidentialScreen *string `gorm:"column:residential_screen" json:"residential_screen"`
	ResidentialRate   *string `gorm:"column:r_per_screen" json:"r_per_screen"`
	ResidentialPlan   *string `gorm:"column:r_plan" json:"r_plan"`

	CorporateScreen *string `gorm:"column:corporate_screen" json:"corporate_screen"`
	CorporateRate   *string `gorm:"column:c_per_screen" json:"c_per_screen"`
	CorporatePlan   *string `gorm:"column:c_plan" json:"c_plan"`

	OutdoorScreen *string `gorm:"column:outdoor_screen" json:"outdoor_screen"`
	OutdoorRate   *string `gorm:"column:o_per_screen" json:"o_per_screen"`
	OutdoorPlan   *string `gorm:"column:o_plan" json:"o_plan"`
}

// Enquiry is the central sales-lead/campaign record, one row per enquiry in
// the sales_enquiry table. Only creation assigns ID; every other operation
// requires a pre-existing one. account_owner is a display name compared by
// string equality, not a foreign key.
type Enquiry struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountOwner string `gorm:"column:account_owner;size:100" json:"account_owner"`

	// Customer identity
	Name         string `gorm:"size:255" json:"name"`
	PocName      string `gorm:"column:poc_name;size:255" json:"poc_name"`
	MobileNumber string `gorm:"column:mobile_number;size:30" json:"mobile_number"`
	City         string `gorm:"size:100" json:"city"`
	Email        string `gorm:"size:255" json:"email"`
	CustomerType string `gorm:"column:customer_type;size:50" json:"customer_type"`

	// Lifecycle / action
	ActionType        string `gorm:"column:action_type;size:100" json:"action_type"`
	EmailSub          string `gorm:"column:email_sub" json:"email_sub"`
	EmailBody         string `gorm:"column:email_body" json:"email_body"`
	FollowupEmailSub  string `gorm:"column:followup_email_sub" json:"followup_email_sub"`
	FollowupEmailBody string `gorm:"column:followup_email_body" json:"followup_email_body"`
	Note              string `json:"note"`

	CampaignPlan `gorm:"embedded"`
	TargetPlan   CampaignPlan `gorm:"embedded;embeddedPrefix:t_" json:"target_plan"`

	// Financial / compliance
	Amount        *string `gorm:"column:amount" json:"amount"`
	TotalValue    *string `gorm:"column:total_value" json:"total_value"`
	InvoiceNo     string  `gorm:"column:invoice_no;size:100" json:"invoice_no"`
	InvoiceDate   *string `gorm:"column:invoice_date" json:"invoice_date"`
	PoNo          string  `gorm:"column:po_no;size:100" json:"po_no"`
	PoDate        *string `gorm:"column:po_date" json:"po_date"`
	AckNo         string  `gorm:"column:ack_no;size:100" json:"ack_no"`
	AckDate       *string `gorm:"column:ack_date" json:"ack_date"`
	Irn           string  `gorm:"column:irn;size:100" json:"irn"`
	GstNo         string  `gorm:"column:gst_no;size:50" json:"gst_no"`
	PanNo         string  `gorm:"column:pan_no;size:50" json:"pan_no"`
	Website       string  `gorm:"size:255" json:"website"`
	PlaceOfSupply string  `gorm:"column:place_of_supply;size:100" json:"place_of_supply"`
	PaymentTerms  string  `gorm:"column:payment_terms" json:"payment_terms"`
	BillingAddr   string  `gorm:"column:billing_address" json:"billing_address"`
	ShippingAddr  string  `gorm:"column:shipping_address" json:"shipping_address"`
	Spoc          string  `gorm:"size:100" json:"spoc"`

	// Confirmation attachment
	ConfirmationPdf          string `gorm:"column:confirmation_pdf;size:255" json:"confirmation_pdf"`
	ConfirmationLink         string `gorm:"column:confirmation_link;size:512" json:"confirmation_link"`
	ConfirmationLinkDownload string `gorm:"column:confirmation_link_download;size:512" json:"confirmation_link_download"`

	// Closure / audit
	ClosureDate      *string `gorm:"column:closure_date" json:"closure_date"`
	ClosedWonRemarks string  `gorm:"column:closed_won_remarks" json:"closed_won_remarks"`
	Remark           string  `json:"remark"`
	PaymentURL       string  `gorm:"column:payment_url;size:512" json:"payment_url"`
	LastModifiedBy   string  `gorm:"column:last_modified_by;size:100" json:"last_modified_by"`
}

func (Enquiry) TableName() string {
	return "sales_enquiry"
}

// EnquirySummary is the dashboard projection of an enquiry row.
type EnquirySummary struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	City         string `json:"city"`
	ActionType   string `json:"action_type"`
	MobileNumber string `json:"mobile_number"`
	CustomerType string `json:"customer_type"`
	AccountOwner string `json:"account_owner"`
	PoNo         string `json:"po_no"`
	AckNo        string `json:"ack_no"`
	BillingAddr  string `gorm:"column:billing_address" json:"billing_address"`
	Spoc         string `json:"spoc"`
}
