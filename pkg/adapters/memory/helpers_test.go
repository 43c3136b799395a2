package memory_test

import "context"

type namedState string

func (s namedState) Name() string                   { return string(s) }
func (s namedState) Load(ctx context.Context) error   { return nil }
func (s namedState) Unload(ctx context.Context) error { return nil }
