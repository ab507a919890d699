package repomanager

import (
	"context"
	"database/sql"

	"github.com/medportal/authsvc/internal/dbx"
	"github.com/medportal/authsvc/internal/server/repositories/refreshtokens"
	"github.com/medportal/authsvc/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
}
