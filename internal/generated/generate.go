package api

//go:generate oapi-codegen -generate types,chi-server -package api -o api.gen.go ../../api/api.yaml
