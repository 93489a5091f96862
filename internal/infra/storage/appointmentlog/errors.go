package appointmentlog

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointmentlog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointmentlog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointmentlog.repository: failed to scan row")

	// ErrEncodeChanges возвращается при ошибке сериализации полезной нагрузки
	ErrEncodeChanges = errors.New("appointmentlog.repository: failed to encode changes")
)
