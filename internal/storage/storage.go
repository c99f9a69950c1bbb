// Package storage holds the authoritative collections of users and hazard
// reports behind a single Store interface, so the service layer never depends
// on a concrete backend.
package storage

import (
	"context"
	"errors"

	"github.com/Aditi-Ethiraj14/OceanSync/internal/model"
)

// ErrNotFound is returned by lookups when no record matches.
var ErrNotFound = errors.New("record not found")

// Store defines persistence operations for users and hazard reports.
//
// Create operations generate the record identifier and creation timestamp and
// fill them into the passed struct. List operations return reports most
// recent first and hand out copies, never references into the store.
type Store interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	CreateHazardReport(ctx context.Context, report *model.HazardReport) error
	ListHazardReports(ctx context.Context) ([]model.HazardReport, error)
	ListHazardReportsByUser(ctx context.Context, userID string) ([]model.HazardReport, error)
}
