//go:generate mockgen -source=../kv_store.go   -destination=./mock_kv_store.go   -package=mocks
//go:generate mockgen -source=../order_sink.go -destination=./mock_order_sink.go -package=mocks
//go:generate mockgen -source=../notifier.go   -destination=./mock_notifier.go   -package=mocks
//go:generate mockgen -source=../validator.go  -destination=./mock_validator.go  -package=mocks
//go:generate mockgen -source=../logger.go     -destination=./mock_logger.go     -package=mocks
//go:generate mockgen -source=../services.go   -destination=./mock_services.go   -package=mocks

package mocks
