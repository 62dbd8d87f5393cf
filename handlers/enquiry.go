// handlers/enquiry.go
package handlers

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"p9e.in/salescrm/config"
	"p9e.in/salescrm/middleware"
	"p9e.in/salescrm/models"
)

const maxUploadBytes = 50 << 20

// writeJSON is the common success path for every enquiry endpoint.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeServiceError maps the error taxonomy onto HTTP statuses. Database
// detail is logged, never sent to the client.
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *models.ValidationError
	var nferr *models.NotFoundError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": verr.Msg})
	case errors.As(err, &nferr):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Entry not found"})
	default:
		zap.L().Error("enquiry request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
	}
}

func entryID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &models.ValidationError{Msg: "invalid enquiry id"}
	}
	return id, nil
}

// OwnerDashboard lists the calling user's enquiries.
func OwnerDashboard(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	if claims == nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	svc := NewEnquiryService(config.DB)
	rows, err := svc.ListByOwner(claims.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":      map[string]string{"id": claims.UserID, "name": claims.Name},
		"enquiries": rows,
	})
}

// AdminDashboard lists every owned enquiry, newest first, with the distinct
// city and owner lists used to build the filter dropdowns.
func AdminDashboard(w http.ResponseWriter, r *http.Request) {
	svc := NewEnquiryService(config.DB)
	rows, cities, owners, err := svc.AdminList()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"enquiries": rows,
		"cities":    cities,
		"owners":    owners,
	})
}

// GetEnquiry serves the edit view's record fetch.
func GetEnquiry(w http.ResponseWriter, r *http.Request) {
	id, err := entryID(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	svc := NewEnquiryService(config.DB)
	e, err := svc.GetByID(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"enquiry": e})
}

// GetEntry returns one enquiry as bare JSON.
func GetEntry(w http.ResponseWriter, r *http.Request) {
	id, err := entryID(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	svc := NewEnquiryService(config.DB)
	e, err := svc.GetByID(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// formFile pulls the optional uploaded file out of the multipart form.
// A missing field is not an error, and neither is a urlencoded request
// that carries no file at all.
func formFile(r *http.Request, field string) (multipart.File, *multipart.FileHeader, error) {
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile || err == http.ErrNotMultipart {
		return nil, nil, nil
	}
	return file, header, err
}

// SaveEntry is the dual-mode create-or-update behind the popup form.
//
// Without entry_id it creates a record from the contact subset and returns
// the new id; every other submitted field is dropped. With entry_id it
// replaces the fixed save-entry column set. The attachment is stored before
// the database write (a bad MIME type must reject the request before
// anything is written); mail dispatch starts only after the write committed,
// and its outcome is reported next to the write's, never merged into it.
func SaveEntry(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	if claims == nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil && err != http.ErrNotMultipart {
		writeServiceError(w, &models.ValidationError{Msg: "bad multipart form"})
		return
	}

	f := saveEntryForm(r)
	svc := NewEnquiryService(config.DB)

	rawID := r.FormValue("entry_id")
	if rawID == "" {
		id, err := svc.Create(claims.Name, f.Company, f.Poc, f.Mobile, f.City, f.Email, f.CustomerType)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"id": id})
		return
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		writeServiceError(w, &models.ValidationError{Msg: "invalid entry_id"})
		return
	}

	var att *StoredAttachment
	attachmentOutcome := ""
	if file, header, ferr := formFile(r, "confirmation_pdf"); ferr != nil {
		writeServiceError(w, &models.ValidationError{Msg: "bad file field"})
		return
	} else if file != nil {
		defer file.Close()
		att, ferr = NewAttachmentStore().Save(r.Context(), file, header)
		if ferr != nil {
			var verr *models.ValidationError
			if errors.As(ferr, &verr) {
				writeServiceError(w, ferr)
				return
			}
			// Storage failure: the record update goes ahead without the
			// attachment fields, and the client is told.
			zap.L().Error("attachment store failed", zap.Error(ferr))
			attachmentOutcome = "upload failed"
		}
	}

	if err := svc.Update(id, f, att); err != nil {
		writeServiceError(w, err)
		return
	}

	user := middleware.GetUser(r)
	outcomes := NewMailer().Dispatch(user, f.Email,
		f.EmailSubject, f.EmailBody,
		f.FollowupEmailSub, f.FollowupEmailBody)

	resp := map[string]interface{}{"id": id}
	if attachmentOutcome != "" {
		resp["attachment"] = attachmentOutcome
	}
	if outcomes != nil {
		resp["mail"] = outcomes
	}
	writeJSON(w, http.StatusOK, resp)
}

// UpdateEntry is the broader edit-form replace. A new upload wins; otherwise
// the client-supplied existing reference is kept.
func UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id, err := entryID(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil && err != http.ErrNotMultipart {
		writeServiceError(w, &models.ValidationError{Msg: "bad multipart form"})
		return
	}

	f := fullReplaceForm(r)

	var att *StoredAttachment
	attachmentOutcome := ""
	if file, header, ferr := formFile(r, "confirmation_file"); ferr != nil {
		writeServiceError(w, &models.ValidationError{Msg: "bad file field"})
		return
	} else if file != nil {
		defer file.Close()
		att, ferr = NewAttachmentStore().Save(r.Context(), file, header)
		if ferr != nil {
			var verr *models.ValidationError
			if errors.As(ferr, &verr) {
				writeServiceError(w, ferr)
				return
			}
			zap.L().Error("attachment store failed", zap.Error(ferr))
			attachmentOutcome = "upload failed"
		}
	}

	svc := NewEnquiryService(config.DB)
	if err := svc.FullReplace(id, f, att); err != nil {
		writeServiceError(w, err)
		return
	}

	resp := map[string]interface{}{"message": "Data updated successfully"}
	if attachmentOutcome != "" {
		resp["attachment"] = attachmentOutcome
	}
	writeJSON(w, http.StatusOK, resp)
}

// EnquiryInline applies the whitelisted sparse update from the dashboard's
// inline editor.
func EnquiryInline(w http.ResponseWriter, r *http.Request) {
	id, err := entryID(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := r.ParseForm(); err != nil {
		writeServiceError(w, &models.ValidationError{Msg: "bad form"})
		return
	}

	svc := NewEnquiryService(config.DB)
	if err := svc.Patch(id, r.PostForm, middleware.GetUserName(r)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Successfully updated"})
}
