// handlers/enquiry_forms.go
package handlers

import "net/http"

// PlanFields carries one schedule + line-item group as submitted. The target
// plan arrives as a second copy of the same group under t_-prefixed names.
type PlanFields struct {
	StartDate         string
	EndDate           string
	Duration          string
	ResidentialScreen string
	ResidentialRate   string
	ResidentialPlan   string
	CorporateScreen   string
	CorporateRate     string
	CorporatePlan     string
	OutdoorScreen     string
	OutdoorRate       string
	OutdoorPlan       string
}

func planFields(r *http.Request, prefix string) PlanFields {
	return PlanFields{
		StartDate:         r.FormValue(prefix + "start_date"),
		EndDate:           r.FormValue(prefix + "end_date"),
		Duration:          r.FormValue(prefix + "duration"),
		ResidentialScreen: r.FormValue(prefix + "residential_screen"),
		ResidentialRate:   r.FormValue(prefix + "r_per_screen"),
		ResidentialPlan:   r.FormValue(prefix + "r_plan"),
		CorporateScreen:   r.FormValue(prefix + "corporate_screen"),
		CorporateRate:     r.FormValue(prefix + "c_per_screen"),
		CorporatePlan:     r.FormValue(prefix + "c_plan"),
		OutdoorScreen:     r.FormValue(prefix + "outdoor_screen"),
		OutdoorRate:       r.FormValue(prefix + "o_per_screen"),
		OutdoorPlan:       r.FormValue(prefix + "o_plan"),
	}
}

// SaveEntryForm mirrors the save-entry popup form. Field names on the wire
// are the historical ones (company, poc, type, GST_No, ...).
type SaveEntryForm struct {
	Company      string
	Poc          string
	Mobile       string
	City         string
	Email        string
	CustomerType string

	Action            string
	EmailSubject      string
	EmailBody         string
	FollowupEmailSub  string
	FollowupEmailBody string

	PlanFields
	Target PlanFields

	Note          string
	Amount        string
	InvoiceNo     string
	InvoiceDate   string
	PoNo          string
	PoDate        string
	PlaceOfSupply string
	PaymentTerms  string
	AckNo         string
	AckDate       string
	Irn           string
	Spoc          string
	BillingAddr   string
	GstNo         string
	PanNo         string
	Website       string
}

func saveEntryForm(r *http.Request) SaveEntryForm {
	return SaveEntryForm{
		Company:      r.FormValue("company"),
		Poc:          r.FormValue("poc"),
		Mobile:       r.FormValue("mobile"),
		City:         r.FormValue("city"),
		Email:        r.FormValue("email"),
		CustomerType: r.FormValue("type"),

		Action:            r.FormValue("action"),
		EmailSubject:      r.FormValue("email_subject"),
		EmailBody:         r.FormValue("email_body"),
		FollowupEmailSub:  r.FormValue("followup_email_sub"),
		FollowupEmailBody: r.FormValue("followup_email_body"),

		PlanFields: planFields(r, ""),
		Target:     planFields(r, "t_"),

		Note:          r.FormValue("note"),
		Amount:        r.FormValue("amount"),
		InvoiceNo:     r.FormValue("invoice_no"),
		InvoiceDate:   r.FormValue("invoice_date"),
		PoNo:          r.FormValue("po_no"),
		PoDate:        r.FormValue("po_date"),
		PlaceOfSupply: r.FormValue("place_of_supply"),
		PaymentTerms:  r.FormValue("payment_terms"),
		AckNo:         r.FormValue("ack_no"),
		AckDate:       r.FormValue("ack_date"),
		Irn:           r.FormValue("irn"),
		Spoc:          r.FormValue("spoc"),
		BillingAddr:   r.FormValue("billing_address"),
		GstNo:         r.FormValue("GST_No"),
		PanNo:         r.FormValue("pan_No"),
		Website:       r.FormValue("Website"),
	}
}

// FullReplaceForm mirrors the update-entry edit form, which submits canonical
// column names and additionally covers ownership, closure and payment fields.
type FullReplaceForm struct {
	AccountOwner string
	Name         string
	PocName      string
	MobileNumber string
	City         string
	Email        string
	CustomerType string

	ActionType        string
	EmailSub          string
	EmailBody         string
	FollowupEmailSub  string
	FollowupEmailBody string

	StartDate         string
	EndDate           string
	Duration          string
	TotalValue        string
	ResidentialScreen string
	ResidentialRate   string
	ResidentialPlan   string
	CorporateScreen   string
	CorporateRate     string
	CorporatePlan     string
	OutdoorScreen     string
	OutdoorRate       string
	OutdoorPlan       string

	Note             string
	InvoiceNo        string
	InvoiceDate      string
	Amount           string
	ClosureDate      string
	ClosedWonRemarks string
	Remark           string
	PaymentURL       string
	PoNo             string
	PoDate           string
	GstNo            string
	PanNo            string
	Website          string
	PlaceOfSupply    string
	PaymentTerms     string
	AckNo            string
	AckDate          string
	Irn              string
	Spoc             string
	BillingAddr      string
	ShippingAddr     string

	// References kept when no new file is uploaded.
	ExistingPdf          string
	ExistingLink         string
	ExistingLinkDownload string
}

func fullReplaceForm(r *http.Request) FullReplaceForm {
	return FullReplaceForm{
		AccountOwner: r.FormValue("account_owner"),
		Name:         r.FormValue("name"),
		PocName:      r.FormValue("poc_name"),
		MobileNumber: r.FormValue("mobile_number"),
		City:         r.FormValue("city"),
		Email:        r.FormValue("email"),
		CustomerType: r.FormValue("customer_type"),

		ActionType:        r.FormValue("action_type"),
		EmailSub:          r.FormValue("email_sub"),
		EmailBody:         r.FormValue("email_body"),
		FollowupEmailSub:  r.FormValue("followup_email_sub"),
		FollowupEmailBody: r.FormValue("followup_email_body"),

		StartDate:         r.FormValue("start_date"),
		EndDate:           r.FormValue("end_date"),
		Duration:          r.FormValue("duration"),
		TotalValue:        r.FormValue("total_value"),
		ResidentialScreen: r.FormValue("residential_screen"),
		ResidentialRate:   r.FormValue("r_per_screen"),
		ResidentialPlan:   r.FormValue("r_plan"),
		CorporateScreen:   r.FormValue("corporate_screen"),
		CorporateRate:     r.FormValue("c_per_screen"),
		CorporatePlan:     r.FormValue("c_plan"),
		OutdoorScreen:     r.FormValue("outdoor_screen"),
		OutdoorRate:       r.FormValue("o_per_screen"),
		OutdoorPlan:       r.FormValue("o_plan"),

		Note:             r.FormValue("note"),
		InvoiceNo:        r.FormValue("invoice_no"),
		InvoiceDate:      r.FormValue("invoice_date"),
		Amount:           r.FormValue("amount"),
		ClosureDate:      r.FormValue("closure_date"),
		ClosedWonRemarks: r.FormValue("closed_won_remarks"),
		Remark:           r.FormValue("remark"),
		PaymentURL:       r.FormValue("payment_url"),
		PoNo:             r.FormValue("po_no"),
		PoDate:           r.FormValue("po_date"),
		GstNo:            r.FormValue("gst_no"),
		PanNo:            r.FormValue("pan_no"),
		Website:          r.FormValue("website"),
		PlaceOfSupply:    r.FormValue("place_of_supply"),
		PaymentTerms:     r.FormValue("payment_terms"),
		AckNo:            r.FormValue("ack_no"),
		AckDate:          r.FormValue("ack_date"),
		Irn:              r.FormValue("irn"),
		Spoc:             r.FormValue("spoc"),
		BillingAddr:      r.FormValue("billing_address"),
		ShippingAddr:     r.FormValue("shipping_address"),

		ExistingPdf:          r.FormValue("existing_confirmation_pdf"),
		ExistingLink:         r.FormValue("existing_confirmation_link"),
		ExistingLinkDownload: r.FormValue("existing_confirmation_link_download"),
	}
}
