package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/unibase/internal/domain/apperror"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeInvalidText         = "22P02"
)

var constraintMessages = map[string]string{
	"users_email_key":                 "email already registered",
	"categories_name_key":             "category name already exists",
	"regions_name_key":                "region name already exists",
	"locations_name_key":              "location name already exists",
	"universities_name_key":           "university name already exists",
	"universities_email_key":          "university email already exists",
	"universities_phone_number_key":   "university phone number already exists",
	"departments_name_key":            "department name already exists",
	"programs_name_key":               "program name already exists",
	"favorites_user_university_key":   "university already in favorites",
	"locations_region_id_fkey":        "region is referenced by locations",
	"universities_category_id_fkey":   "category is referenced by universities",
	"universities_location_id_fkey":   "location is referenced by universities",
	"departments_university_id_fkey":  "university is referenced by departments",
	"programs_department_id_fkey":     "department is referenced by programs",
	"students_program_id_fkey":        "program is referenced by students",
	"comments_university_id_fkey":     "university is referenced by comments",
	"favorites_university_id_fkey":    "university is referenced by favorites",
	"categories_created_by_id_fkey":   "user still owns categories",
	"regions_created_by_id_fkey":      "user still owns regions",
	"locations_created_by_id_fkey":    "user still owns locations",
	"universities_created_by_id_fkey": "user still owns universities",
	"departments_created_by_id_fkey":  "user still owns departments",
	"programs_created_by_id_fkey":     "user still owns programs",
	"news_created_by_id_fkey":         "user still owns news",
	"comments_user_id_fkey":           "user still owns comments",
	"favorites_user_id_fkey":          "user still has favorites",
}

// classify maps driver errors onto apperror kinds. Anything unrecognized is
// returned unchanged and surfaces as an internal error.
func classify(err error, notFound string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperror.NotFound(notFound)
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return apperror.Wrap(apperror.ErrConflict, constraintMessage(pgErr, "resource already exists"), err)
	case codeForeignKeyViolation:
		// the insert side means the parent vanished; the delete side means children remain
		if strings.HasPrefix(pgErr.Message, "insert or update") {
			return apperror.Wrap(apperror.ErrConflict, "referenced resource does not exist", err)
		}
		return apperror.Wrap(apperror.ErrConflict, constraintMessage(pgErr, "resource is referenced by other records"), err)
	case codeCheckViolation:
		return apperror.Wrap(apperror.ErrInvalid, "value out of range", err)
	case codeInvalidText:
		return apperror.Wrap(apperror.ErrInvalid, "malformed identifier", err)
	}
	return err
}

func constraintMessage(pgErr *pgconn.PgError, fallback string) string {
	if msg, ok := constraintMessages[pgErr.ConstraintName]; ok {
		return msg
	}
	return fallback
}
