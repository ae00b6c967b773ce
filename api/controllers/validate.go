package controllers

import (
	"strings"

	"github.com/google/uuid"

	"github.com/feedstorehq/feedstore-backend/pkg/enums"
	pkgerrors "github.com/feedstorehq/feedstore-backend/pkg/errors"
)

func parseUUID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid id").
			WithDetails(map[string]any{"field": field})
	}
	return id, nil
}

func parseCommissionType(raw string) (*enums.CommissionType, error) {
	parsed, err := enums.ParseCommissionType(strings.TrimSpace(raw))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid commission type").
			WithDetails(map[string]any{"valid": []enums.CommissionType{enums.CommissionTypePercentage, enums.CommissionTypeFixed}})
	}
	return &parsed, nil
}
