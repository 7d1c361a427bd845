// Copyright 2024
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package inventory

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/penny-vault/vsummary/data"
)

type Inventory struct {
	DBUrl string

	Pool *pgxpool.Pool
}

// Connect to the database configured for the inventory
func (myInventory *Inventory) Connect(ctx context.Context) error {
	if myInventory.Pool != nil {
		return nil
	}

	pool, err := pgxpool.New(ctx, myInventory.DBUrl)
	if err != nil {
		return fmt.Errorf("%w: %w", data.ErrDataAccess, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("%w: %w", data.ErrDataAccess, err)
	}

	myInventory.Pool = pool

	return nil
}

// Close the database pool
func (myInventory *Inventory) Close() {
	if myInventory.Pool != nil {
		myInventory.Pool.Close()
	}
}

// New creates an inventory connected to the database at dbURL
func New(ctx context.Context, dbURL string) (*Inventory, error) {
	myInventory := &Inventory{
		DBUrl: dbURL,
	}

	if err := myInventory.Connect(ctx); err != nil {
		return nil, err
	}

	return myInventory, nil
}
