package booking

import (
	"github.com/m04kA/DriveX-RentalService/pkg/dbtx"
)

// Переиспользуем интерфейсы из dbtx для работы с БД
type DBExecutor = dbtx.DBExecutor
type TxExecutor = dbtx.TxExecutor
