package main

//go:generate echo "Generating SQLC files..."
//go:generate bash -c "export PATH=$$PATH:~/go/bin && sqlc generate -f ../storage/sqlc.yaml"
//go:generate echo "SQLC files generated"

//go:generate echo "CSS generation handled by npm run build:css"

// This file contains go:generate directives for the SQLC queries in
// storage/queries. To regenerate storage/db, run:
//
// go generate ./...
//
// from the project root directory.
