package repos

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/datatypes"

	types "github.com/lumenlearn/lumenlearn-backend/internal/domain"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/apperr"
)

// Pure mappings between engine-native shapes and the canonical records.
// Identifiers are stringified on the way out and parsed back on the way in;
// the mapping is lossless within one engine but identifiers are not portable
// across engines. A missing created_at defaults to now.

func defaultedTime(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}

// ---- identifier translation ----

func formatIntID(id uint) string { return strconv.FormatUint(uint64(id), 10) }

func parseIntID(id string) (uint, error) {
	n, err := strconv.ParseUint(id, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed id %q for relational engine", apperr.ErrValidation, id)
	}
	return uint(n), nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: malformed id %q for document engine", apperr.ErrValidation, id)
	}
	return oid, nil
}

// ---- relational rows ----

func accountFromRow(r *accountRow) *types.Account {
	return &types.Account{
		ID:           formatIntID(r.ID),
		Email:        r.Email,
		FullName:     r.FullName,
		CreatedAt:    defaultedTime(r.CreatedAt),
		PasswordHash: r.PasswordHash,
	}
}

func accountToRow(a *types.Account) (*accountRow, error) {
	row := &accountRow{
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		FullName:     a.FullName,
		CreatedAt:    defaultedTime(a.CreatedAt),
	}
	if a.ID != "" {
		id, err := parseIntID(a.ID)
		if err != nil {
			return nil, err
		}
		row.ID = id
	}
	return row, nil
}

func moduleFromRow(r *moduleRow) *types.Module {
	var mcqs []types.MCQ
	if len(r.MCQs) > 0 {
		// Tolerate a corrupt column rather than failing the read.
		_ = json.Unmarshal(r.MCQs, &mcqs)
	}
	return &types.Module{
		ID:        formatIntID(r.ID),
		AccountID: formatIntID(r.AccountID),
		Title:     r.Title,
		Content:   r.Content,
		PDFText:   r.PDFText,
		VideoID:   r.VideoID,
		MCQs:      mcqs,
		CreatedAt: defaultedTime(r.CreatedAt),
	}
}

func moduleToRow(m *types.Module) (*moduleRow, error) {
	accountID, err := parseIntID(m.AccountID)
	if err != nil {
		return nil, err
	}
	row := &moduleRow{
		AccountID: accountID,
		Title:     m.Title,
		Content:   m.Content,
		PDFText:   m.PDFText,
		VideoID:   m.VideoID,
		CreatedAt: defaultedTime(m.CreatedAt),
	}
	if len(m.MCQs) > 0 {
		raw, err := json.Marshal(m.MCQs)
		if err != nil {
			return nil, fmt.Errorf("%w: mcqs not serializable", apperr.ErrValidation)
		}
		row.MCQs = datatypes.JSON(raw)
	}
	if m.ID != "" {
		id, err := parseIntID(m.ID)
		if err != nil {
			return nil, err
		}
		row.ID = id
	}
	return row, nil
}

func resultFromRow(r *resultRow) *types.Result {
	return &types.Result{
		ID:             formatIntID(r.ID),
		AccountID:      formatIntID(r.AccountID),
		ModuleID:       formatIntID(r.ModuleID),
		Score:          r.Score,
		TotalQuestions: r.TotalQuestions,
		TimeTaken:      r.TimeTaken,
		CreatedAt:      defaultedTime(r.CreatedAt),
	}
}

func resultToRow(r *types.Result) (*resultRow, error) {
	accountID, err := parseIntID(r.AccountID)
	if err != nil {
		return nil, err
	}
	moduleID, err := parseIntID(r.ModuleID)
	if err != nil {
		return nil, err
	}
	row := &resultRow{
		AccountID:      accountID,
		ModuleID:       moduleID,
		Score:          r.Score,
		TotalQuestions: r.TotalQuestions,
		TimeTaken:      r.TimeTaken,
		CreatedAt:      defaultedTime(r.CreatedAt),
	}
	if r.ID != "" {
		id, err := parseIntID(r.ID)
		if err != nil {
			return nil, err
		}
		row.ID = id
	}
	return row, nil
}

// ---- documents ----

func accountFromDoc(d *accountDoc) *types.Account {
	return &types.Account{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		FullName:     d.FullName,
		CreatedAt:    defaultedTime(d.CreatedAt),
		PasswordHash: d.PasswordHash,
	}
}

func accountToDoc(a *types.Account) (*accountDoc, error) {
	doc := &accountDoc{
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		FullName:     a.FullName,
		CreatedAt:    defaultedTime(a.CreatedAt),
	}
	if a.ID != "" {
		oid, err := parseObjectID(a.ID)
		if err != nil {
			return nil, err
		}
		doc.ID = oid
	}
	return doc, nil
}

func moduleFromDoc(d *moduleDoc) *types.Module {
	return &types.Module{
		ID:        d.ID.Hex(),
		AccountID: d.AccountID.Hex(),
		Title:     d.Title,
		Content:   d.Content,
		PDFText:   d.PDFText,
		VideoID:   d.VideoID,
		MCQs:      d.MCQs,
		CreatedAt: defaultedTime(d.CreatedAt),
	}
}

func moduleToDoc(m *types.Module) (*moduleDoc, error) {
	accountID, err := parseObjectID(m.AccountID)
	if err != nil {
		return nil, err
	}
	doc := &moduleDoc{
		AccountID: accountID,
		Title:     m.Title,
		Content:   m.Content,
		PDFText:   m.PDFText,
		VideoID:   m.VideoID,
		MCQs:      m.MCQs,
		CreatedAt: defaultedTime(m.CreatedAt),
	}
	if m.ID != "" {
		oid, err := parseObjectID(m.ID)
		if err != nil {
			return nil, err
		}
		doc.ID = oid
	}
	return doc, nil
}

func resultFromDoc(d *resultDoc) *types.Result {
	return &types.Result{
		ID:             d.ID.Hex(),
		AccountID:      d.AccountID.Hex(),
		ModuleID:       d.ModuleID.Hex(),
		Score:          d.Score,
		TotalQuestions: d.TotalQuestions,
		TimeTaken:      d.TimeTaken,
		CreatedAt:      defaultedTime(d.CreatedAt),
	}
}

func resultToDoc(r *types.Result) (*resultDoc, error) {
	accountID, err := parseObjectID(r.AccountID)
	if err != nil {
		return nil, err
	}
	moduleID, err := parseObjectID(r.ModuleID)
	if err != nil {
		return nil, err
	}
	doc := &resultDoc{
		AccountID:      accountID,
		ModuleID:       moduleID,
		Score:          r.Score,
		TotalQuestions: r.TotalQuestions,
		TimeTaken:      r.TimeTaken,
		CreatedAt:      defaultedTime(r.CreatedAt),
	}
	if r.ID != "" {
		oid, err := parseObjectID(r.ID)
		if err != nil {
			return nil, err
		}
		doc.ID = oid
	}
	return doc, nil
}
