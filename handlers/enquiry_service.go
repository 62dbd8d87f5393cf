// handlers/enquiry_service.go
package handlers

import (
	"errors"
	"net/url"

	"gorm.io/gorm"
	"p9e.in/salescrm/models"
	"p9e.in/salescrm/utils"
)

// EnquiryService owns the sales_enquiry lifecycle: create, two replace
// paths with different column coverage, the whitelisted inline patch, and
// the dashboard queries. Side effects (attachment storage, mail) live in
// their own components; the service only writes rows.
type EnquiryService struct {
	db *gorm.DB
}

func NewEnquiryService(db *gorm.DB) *EnquiryService {
	return &EnquiryService{db: db}
}

// Create inserts a new enquiry carrying only the contact subset. Everything
// else stays NULL/default until the client follows up with the new id.
func (s *EnquiryService) Create(owner, name, poc, mobile, city, email, customerType string) (int64, error) {
	e := models.Enquiry{
		AccountOwner: owner,
		Name:         name,
		PocName:      poc,
		MobileNumber: mobile,
		City:         city,
		Email:        email,
		CustomerType: customerType,
	}
	if err := s.db.Create(&e).Error; err != nil {
		return 0, &models.PersistenceError{Op: "create enquiry", Err: err}
	}
	return e.ID, nil
}

// Update is the save-entry replace: the fixed column set below is
// overwritten wholesale, submitted or not. Dates and numeric text fields go
// through the normalizer so a blank never lands in a typed column. The
// attachment columns are touched only when a new attachment was stored.
func (s *EnquiryService) Update(id int64, f SaveEntryForm, att *StoredAttachment) error {
	cols := map[string]interface{}{
		"action_type":         f.Action,
		"email_sub":           f.EmailSubject,
		"email_body":          f.EmailBody,
		"followup_email_sub":  f.FollowupEmailSub,
		"followup_email_body": f.FollowupEmailBody,
		"start_date":          utils.NormalizeDate(f.StartDate),
		"end_date":            utils.NormalizeDate(f.EndDate),
		"duration":            utils.NormalizeNumeric(f.Duration),
		"residential_screen":  utils.NormalizeNumeric(f.ResidentialScreen),
		"r_per_screen":        utils.NormalizeNumeric(f.ResidentialRate),
		"r_plan":              f.ResidentialPlan,
		"corporate_screen":    utils.NormalizeNumeric(f.CorporateScreen),
		"c_per_screen":        utils.NormalizeNumeric(f.CorporateRate),
		"c_plan":              f.CorporatePlan,
		"outdoor_screen":      utils.NormalizeNumeric(f.OutdoorScreen),
		"o_per_screen":        utils.NormalizeNumeric(f.OutdoorRate),
		"o_plan":              f.OutdoorPlan,
		"note":                f.Note,
		"amount":              utils.NormalizeNumeric(f.Amount),
		"invoice_no":          f.InvoiceNo,
		"invoice_date":        utils.NormalizeDate(f.InvoiceDate),
		"po_no":               f.PoNo,
		"po_date":             utils.NormalizeDate(f.PoDate),
		"place_of_supply":     f.PlaceOfSupply,
		"payment_terms":       f.PaymentTerms,
		"ack_no":              f.AckNo,
		"ack_date":            utils.NormalizeDate(f.AckDate),
		"irn":                 f.Irn,
		"spoc":                f.Spoc,
		"billing_address":     f.BillingAddr,
		"gst_no":              f.GstNo,
		"pan_no":              f.PanNo,
		"website":             f.Website,

		// target plan shadow columns
		"t_start_date":         utils.NormalizeDate(f.Target.StartDate),
		"t_end_date":           utils.NormalizeDate(f.Target.EndDate),
		"t_duration":           utils.NormalizeNumeric(f.Target.Duration),
		"t_residential_screen": utils.NormalizeNumeric(f.Target.ResidentialScreen),
		"t_r_per_screen":       utils.NormalizeNumeric(f.Target.ResidentialRate),
		"t_r_plan":             f.Target.ResidentialPlan,
		"t_corporate_screen":   utils.NormalizeNumeric(f.Target.CorporateScreen),
		"t_c_per_screen":       utils.NormalizeNumeric(f.Target.CorporateRate),
		"t_c_plan":             f.Target.CorporatePlan,
		"t_outdoor_screen":     utils.NormalizeNumeric(f.Target.OutdoorScreen),
		"t_o_per_screen":       utils.NormalizeNumeric(f.Target.OutdoorRate),
		"t_o_plan":             f.Target.OutdoorPlan,
	}
	if att != nil {
		cols["confirmation_pdf"] = att.Filename
		cols["confirmation_link"] = att.Link
		cols["confirmation_link_download"] = att.DownloadLink
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Enquiry{}).Where("id = ?", id).Updates(cols).Error
	})
	if err != nil {
		return &models.PersistenceError{Op: "update enquiry", Err: err}
	}
	return nil
}

// FullReplace is the broader update-entry path. Unlike Update it also covers
// ownership, customer identity, closure and payment columns, and the
// attachment reference falls back to the client-supplied existing one when no
// new file arrived.
func (s *EnquiryService) FullReplace(id int64, f FullReplaceForm, att *StoredAttachment) error {
	pdf := f.ExistingPdf
	link := f.ExistingLink
	download := f.ExistingLinkDownload
	if att != nil {
		pdf = att.Filename
		link = att.Link
		download = att.DownloadLink
	}

	cols := map[string]interface{}{
		"account_owner":       f.AccountOwner,
		"name":                f.Name,
		"poc_name":            f.PocName,
		"mobile_number":       f.MobileNumber,
		"city":                f.City,
		"email":               f.Email,
		"customer_type":       f.CustomerType,
		"action_type":         f.ActionType,
		"email_sub":           f.EmailSub,
		"email_body":          f.EmailBody,
		"followup_email_sub":  f.FollowupEmailSub,
		"followup_email_body": f.FollowupEmailBody,
		"start_date":          utils.NormalizeDate(f.StartDate),
		"end_date":            utils.NormalizeDate(f.EndDate),
		"duration":            utils.NormalizeNumeric(f.Duration),
		"total_value":         utils.NormalizeNumeric(f.TotalValue),
		"residential_screen":  utils.NormalizeNumeric(f.ResidentialScreen),
		"r_per_screen":        utils.NormalizeNumeric(f.ResidentialRate),
		"r_plan":              f.ResidentialPlan,
		"corporate_screen":    utils.NormalizeNumeric(f.CorporateScreen),
		"c_per_screen":        utils.NormalizeNumeric(f.CorporateRate),
		"c_plan":              f.CorporatePlan,
		"outdoor_screen":      utils.NormalizeNumeric(f.OutdoorScreen),
		"o_per_screen":        utils.NormalizeNumeric(f.OutdoorRate),
		"o_plan":              f.OutdoorPlan,
		"note":                f.Note,
		"invoice_no":          f.InvoiceNo,
		"invoice_date":        utils.NormalizeDate(f.InvoiceDate),
		"amount":              utils.NormalizeNumeric(f.Amount),
		"closure_date":        utils.NormalizeDate(f.ClosureDate),
		"closed_won_remarks":  f.ClosedWonRemarks,
		"remark":              f.Remark,
		"payment_url":         f.PaymentURL,
		"po_no":               f.PoNo,
		"po_date":             utils.NormalizeDate(f.PoDate),
		"gst_no":              f.GstNo,
		"pan_no":              f.PanNo,
		"website":             f.Website,
		"place_of_supply":     f.PlaceOfSupply,
		"payment_terms":       f.PaymentTerms,
		"ack_no":              f.AckNo,
		"ack_date":            utils.NormalizeDate(f.AckDate),
		"irn":                 f.Irn,
		"spoc":                f.Spoc,
		"billing_address":     f.BillingAddr,
		"shipping_address":    f.ShippingAddr,
		"confirmation_pdf":    pdf,

		"confirmation_link":          link,
		"confirmation_link_download": download,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Enquiry{}).Where("id = ?", id).Updates(cols).Error
	})
	if err != nil {
		return &models.PersistenceError{Op: "replace enquiry", Err: err}
	}
	return nil
}

// patchable is the only field set the inline editor may touch.
var patchable = []string{
	"name", "city", "action_type", "mobile_number", "customer_type",
	"email", "gst_no", "pan_no", "website", "billing_address",
	"shipping_address",
}

// Patch applies a sparse update: only whitelisted fields present in the
// request are written, multi-valued inputs are flattened, and the audit
// column always records the acting user. A request carrying no whitelisted
// field is rejected before anything is written.
func (s *EnquiryService) Patch(id int64, fields url.Values, actor string) error {
	updates := map[string]interface{}{}
	for _, f := range patchable {
		if vals, ok := fields[f]; ok {
			updates[f] = utils.Flatten(vals)
		}
	}
	if len(updates) == 0 {
		return &models.ValidationError{Msg: "no editable fields in request"}
	}

	if actor == "" {
		actor = "Unknown"
	}
	updates["last_modified_by"] = actor

	if err := s.db.Model(&models.Enquiry{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return &models.PersistenceError{Op: "patch enquiry", Err: err}
	}
	return nil
}

func (s *EnquiryService) GetByID(id int64) (*models.Enquiry, error) {
	var e models.Enquiry
	if err := s.db.First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Resource: "enquiry", ID: id}
		}
		return nil, &models.PersistenceError{Op: "get enquiry", Err: err}
	}
	return &e, nil
}

const summaryColumns = "id, name, city, action_type, mobile_number, customer_type, account_owner, po_no, ack_no, billing_address, spoc"

// ListByOwner returns the dashboard projection for one owner. The match is
// exact and case-sensitive.
func (s *EnquiryService) ListByOwner(owner string) ([]models.EnquirySummary, error) {
	var rows []models.EnquirySummary
	err := s.db.Model(&models.Enquiry{}).
		Select(summaryColumns).
		Where("account_owner = ?", owner).
		Scan(&rows).Error
	if err != nil {
		return nil, &models.PersistenceError{Op: "list enquiries", Err: err}
	}
	return rows, nil
}

// AdminList is the all-owners view: newest first, plus the distinct city and
// owner lists the admin dashboard uses to populate its filters.
func (s *EnquiryService) AdminList() ([]models.EnquirySummary, []string, []string, error) {
	var rows []models.EnquirySummary
	err := s.db.Model(&models.Enquiry{}).
		Select(summaryColumns).
		Where("account_owner IS NOT NULL").
		Order("id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, nil, nil, &models.PersistenceError{Op: "list all enquiries", Err: err}
	}

	var cities []string
	if err := s.db.Model(&models.Enquiry{}).
		Distinct("city").
		Where("city IS NOT NULL").
		Order("city").
		Pluck("city", &cities).Error; err != nil {
		return nil, nil, nil, &models.PersistenceError{Op: "list cities", Err: err}
	}

	var owners []string
	if err := s.db.Model(&models.Enquiry{}).
		Distinct("account_owner").
		Where("account_owner IS NOT NULL").
		Order("account_owner").
		Pluck("account_owner", &owners).Error; err != nil {
		return nil, nil, nil, &models.PersistenceError{Op: "list owners", Err: err}
	}

	return rows, cities, owners, nil
}
