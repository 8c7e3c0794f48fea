package accounts

import (
	"github.com/reusee/cestudio/configs"
	"github.com/reusee/cestudio/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
}

func (Module) PasswordStorage(
	loader configs.Loader,
) PasswordStorage {
	if storage := configs.First[PasswordStorage](loader, "password_storage"); storage != "" {
		return storage
	}
	return StorageBcrypt
}

func (Module) Store(
	dataDir configs.DataDir,
	storage PasswordStorage,
	logger logs.Logger,
) *Store {
	return NewStore(string(dataDir), storage, logger)
}
