package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name DataPort --dir ../usecase --output usecase --outpkg usecasemock --filename data_port_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Store --dir ../controller/recent --output controller/recent --outpkg recentmock --filename store_mock.go
