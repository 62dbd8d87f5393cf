package handlers

import (
	"net/url"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"p9e.in/salescrm/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Enquiry{}))
	return db
}

func createTestEnquiry(t *testing.T, svc *EnquiryService, owner string) int64 {
	t.Helper()
	id, err := svc.Create(owner, "Acme", "Jane", "12345", "Pune", "jane@acme.test", "corporate")
	require.NoError(t, err)
	return id
}

func TestCreateAssignsFreshIDs(t *testing.T) {
	svc := NewEnquiryService(newTestDB(t))

	first, err := svc.Create("alice", "Acme", "Jane", "12345", "Pune", "jane@acme.test", "corporate")
	require.NoError(t, err)
	assert.Positive(t, first)

	second, err := svc.Create("alice", "Acme", "Jane", "12345", "Pune", "jane@acme.test", "corporate")
	require.NoError(t, err)
	assert.Positive(t, second)
	assert.NotEqual(t, first, second)
}

func TestCreatePopulatesOnlyContactSubset(t *testing.T) {
	svc := NewEnquiryService(newTestDB(t))
	id := createTestEnquiry(t, svc, "carol")

	e, err := svc.GetByID(id)
	require.NoError(t, err)

	assert.Equal(t, "carol", e.AccountOwner)
	assert.Equal(t, "Acme", e.Name)
	assert.Equal(t, "Jane", e.PocName)
	assert.Equal(t, "12345", e.MobileNumber)
	assert.Equal(t, "Pune", e.City)
	assert.Equal(t, "jane@acme.test", e.Email)
	assert.Equal(t, "corporate", e.CustomerType)

	// everything else stays at its zero/NULL default
	assert.Nil(t, e.StartDate)
	assert.Nil(t, e.EndDate)
	assert.Nil(t, e.Amount)
	assert.Nil(t, e.TotalValue)
	assert.Nil(t, e.ResidentialScreen)
	assert.Empty(t, e.InvoiceNo)
	assert.Empty(t, e.ActionType)
	assert.Empty(t, e.ConfirmationPdf)
}

func TestUpdateNormalizesDates(t *testing.T) {
	svc := NewEnquiryService(newTestDB(t))
	id := createTestEnquiry(t, svc, "alice")

	f := SaveEntryForm{
		Action: "Meeting",
		Note:   "spoke to POC",
	}
	f.StartDate = "   "
	f.EndDate = " 2025-06-30 "
	f.Amount = ""

	require.NoError(t, svc.Update(id, f, nil))

	e, err := svc.GetByID(id)
	require.NoError(t, err)
	assert.Nil(t, e.StartDate, "blank start_date must store NULL, not empty string")
	require.NotNil(t, e.EndDate)
	assert.Equal(t, "2025-06-30", *e.EndDate)
	assert.Nil(t, e.Amount)
	assert.Equal(t, "Meeting", e.ActionType)
	assert.Equal(t, "spoke to POC", e.Note)
}

// Date columns are plain text: whatever non-blank string the caller sent
// comes back byte for byte, with no driver-side date coercion.
func TestUpdateKeepsDateStringsVerbatim(t *testing.T) {
	svc := NewEnquiryService(newTestDB(t))
	id := createTestEnquiry(t, svc, "alice")

	f := SaveEntryForm{}
	f.StartDate = "2025-08-01"
	f.EndDate = "31/12/2025" // not ISO; stored as-is

	require.NoError(t, svc.Update(id, f, nil))

	e, err := svc.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, e.CampaignPlan.StartDate)
	assert.Equal(t, "2025-08-01", *e.CampaignPlan.StartDate)
	require.NotNil(t, e.CampaignPlan.EndDate)
	assert.Equal(t, "31/12/2025", *e.CampaignPlan.EndDate)
}

func TestUpdateWritesTargetPlanColumns(t *testing.T) {
	svc := NewEnquiryService(newTestDB(t))
	id := createTestEnquiry(t, svc, "alice")

	f := SaveEntryForm{}
	f.StartDate = "2025-05-01"
	f.ResidentialScreen = "10"
	f.Target.StartDate = "2025-04-01"
	f.Target.ResidentialScreen = "12"

	require.NoError(t, svc.Update(id, f, nil))

	e, err := svc.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, e.CampaignPlan.StartDate)
	assert.Equal(t, "2025-05-01", *e.CampaignPlan.StartDate)
	require.NotNil(t, e.TargetPlan.StartDate)
	assert.Equal(t, "2025-04-01", *e.TargetPlan.StartDate)
	require.NotNil(t, e.TargetPlan.ResidentialScreen)
	assert.Equal(t, "12", *e.TargetPlan.ResidentialScreen)
}

func TestUpdateAttachmentHandling(t *testing.T) {
	svc := NewEnquiryService(newTestDB(t))
	id := createTestEnquiry(t, svc, "alice")

	att := &StoredAttachment{Filename: "123-confirmation.pdf"}
	require.NoError(t, svc.Update(id, SaveEntryForm{}, att))

	e, err := svc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "123-confirmation.pdf", e.ConfirmationPdf)

	// an update without a new attachment keeps the stored reference
	require.NoError(t, svc.Update(id, SaveEntryForm{Action: "Call"}, nil))
	e, err = svc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "123-confirmation.pdf", e.ConfirmationPdf)
	assert.Equal(t, "Call", e.ActionType)
}

func TestFullReplaceNormalizesAndCoversClosure(t *testing.T) {
	svc := NewEnquiryService(newTestDB(t))
	id := createTestEnquiry(t, svc, "alice")

	f := FullReplaceForm{
		AccountOwner:     "alice",
		Name:             "Acme Ltd",
		StartDate:        "",
		ClosureDate:      "2025-08-01",
		ClosedWonRemarks: "signed annual deal",
		Remark:           "priority",
		PaymentURL:       "https://pay.example/abc",
		TotalValue:       "120000",
	}
	require.NoError(t, svc.FullReplace(id, f, nil))

	e, err := svc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltd", e.Name)
	assert.Nil(t, e.StartDate)
	require.NotNil(t, e.ClosureDate)
	assert.Equal(t, "2025-08-01", *e.ClosureDate)
	assert.Equal(t, "signed annual deal", e.ClosedWonRemarks)
	assert.Equal(t, "priority", e.Remark)
	assert.Equal(t, "https://pay.example/abc", e.PaymentURL)
	require.NotNil(t, e.TotalValue)
	assert.Equal(t, "120000", *e.TotalValue)
}

func TestFullReplaceAttachmentFallback(t *testing.T) {
	svc := NewEnquiryService(newTestDB(t))
	id := createTestEnquiry(t, svc, "alice")

	// no new file: the client-supplied existing reference survives
	f := FullReplaceForm{ExistingPdf: "old.pdf", ExistingLink: "https://store/old.pdf"}
	require.NoError(t, svc.FullReplace(id, f, nil))
	e, err := svc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "old.pdf", e.ConfirmationPdf)
	assert.Equal(t, "https://store/old.pdf", e.ConfirmationLink)

	// a new upload wins over the existing reference
	att := &StoredAttachment{Filename: "new.pdf", Link: "https://store/new.pdf", DownloadLink: "https://store/new.pdf?dl"}
	require.NoError(t, svc.FullReplace(id, f, att))
	e, err = svc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "new.pdf", e.ConfirmationPdf)
	assert.Equal(t, "https://store/new.pdf", e.ConfirmationLink)
	assert.Equal(t, "https://store/new.pdf?dl", e.ConfirmationLinkDownload)
}

func TestPatchRejectsEmptyFieldSet(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnquiryService(db)
	id := createTestEnquiry(t, svc, "alice")

	err := svc.Patch(id, url.Values{"not_a_field": {"x"}}, "alice")
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)

	// nothing was written, the audit column included
	e, gerr := svc.GetByID(id)
	require.NoError(t, gerr)
	assert.Empty(t, e.LastModifiedBy)
}

func TestPatchFlattensMultiValues(t *testing.T) {
	svc := NewEnquiryService(newTestDB(t))
	id := createTestEnquiry(t, svc, "alice")

	err := svc.Patch(id, url.Values{"city": {"Pune", "Mumbai"}}, "bob")
	require.NoError(t, err)

	e, err := svc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Pune, Mumbai", e.City)
	assert.Equal(t, "bob", e.LastModifiedBy)
}

func TestPatchSparseAndActorFallback(t *testing.T) {
	svc := NewEnquiryService(newTestDB(t))
	id := createTestEnquiry(t, svc, "alice")

	err := svc.Patch(id, url.Values{"gst_no": {"27ABCDE1234F1Z5"}, "poc_name": {"ignored"}}, "")
	require.NoError(t, err)

	e, err := svc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "27ABCDE1234F1Z5", e.GstNo)
	// non-whitelisted field untouched, actor fell back to the literal
	assert.Equal(t, "Jane", e.PocName)
	assert.Equal(t, "Unknown", e.LastModifiedBy)
	// fields absent from the request keep their values
	assert.Equal(t, "Pune", e.City)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewEnquiryService(newTestDB(t))

	e, err := svc.GetByID(9999)
	assert.Nil(t, e)
	var nferr *models.NotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.EqualValues(t, 9999, nferr.ID)
}

func TestListByOwnerExactMatch(t *testing.T) {
	svc := NewEnquiryService(newTestDB(t))
	createTestEnquiry(t, svc, "bob")
	createTestEnquiry(t, svc, "bob")
	createTestEnquiry(t, svc, "Bob")
	createTestEnquiry(t, svc, "bobby")

	rows, err := svc.ListByOwner("bob")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "bob", row.AccountOwner)
	}
}

func TestAdminListOrderAndFacets(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnquiryService(db)

	first, err := svc.Create("alice", "A", "", "", "Pune", "", "")
	require.NoError(t, err)
	second, err := svc.Create("bob", "B", "", "", "Delhi", "", "")
	require.NoError(t, err)
	_, err = svc.Create("alice", "C", "", "", "Pune", "", "")
	require.NoError(t, err)

	rows, cities, owners, err := svc.AdminList()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Greater(t, rows[0].ID, rows[1].ID, "newest first")
	assert.EqualValues(t, first, rows[2].ID)
	assert.EqualValues(t, second, rows[1].ID)

	assert.ElementsMatch(t, []string{"Pune", "Delhi"}, cities)
	assert.ElementsMatch(t, []string{"alice", "bob"}, owners)
}
