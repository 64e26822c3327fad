// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package config loads the export configuration from the environment.
// Configuration is read once per invocation into an immutable value, so
// the trigger itself never touches ambient process state.
package config

import (
	"strings"

	"github.com/juju/errors"

	"github.com/canonical/dynamoexport/core/export"
)

// Recognised environment variables.
const (
	TableNameKey  = "TABLE_NAME"
	BucketNameKey = "BUCKET_NAME"
	PrefixKey     = "PREFIX"
)

// DefaultPrefix is the destination path prefix used when PREFIX is unset.
const DefaultPrefix = "dynamodb-backups/"

// Config holds the export configuration for one invocation.
type Config struct {
	// TableName is the source table to export.
	TableName string

	// BucketName is the destination bucket.
	BucketName string

	// Prefix is the destination path prefix within the bucket.
	Prefix string
}

// FromEnviron builds a Config from the given lookup function, typically
// os.Getenv. Missing required values fail here, before anything is
// dialled.
func FromEnviron(getenv func(string) string) (Config, error) {
	cfg := Config{
		TableName:  strings.TrimSpace(getenv(TableNameKey)),
		BucketName: strings.TrimSpace(getenv(BucketNameKey)),
		Prefix:     getenv(PrefixKey),
	}
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Trace(err)
	}
	return cfg, nil
}

// Validate ensures the required values are present.
func (c Config) Validate() error {
	if c.TableName == "" {
		return errors.WithType(errors.NotValidf("empty %s", TableNameKey), export.ErrConfiguration)
	}
	if c.BucketName == "" {
		return errors.WithType(errors.NotValidf("empty %s", BucketNameKey), export.ErrConfiguration)
	}
	return nil
}
