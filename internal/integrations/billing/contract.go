package billing

// Logger интерфейс логирования для клиента биллинга
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
