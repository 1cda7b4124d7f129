package ports

import "context"

// LicenseChecker gates job runs.
//
//go:generate mockgen -source=license.go -destination=mocks/mock_license.go -package=mocks
type LicenseChecker interface {
	// Check returns domain.ErrLicenseInvalid when runs are not allowed.
	Check(ctx context.Context) error
}
