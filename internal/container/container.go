package container

import (
	"github.com/sirupsen/logrus"

	"github.com/techhive/user-management-api/config"
	"github.com/techhive/user-management-api/internal/domain/repository"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg      *config.Config
	logger   *logrus.Logger
	userRepo repository.UserRepository
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }

func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }

func SetUserRepository(r repository.UserRepository) { userRepo = r }
func GetUserRepository() repository.UserRepository  { return userRepo }
