// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// QueryOptions filters a catalog query. Empty fields are ignored;
// filters combine with AND.
type QueryOptions struct {
	// Name matches star names by substring, case-insensitive.
	Name string

	// ClassLetter restricts results to one spectral letter (M, K, G, ...).
	ClassLetter string

	// MaxDistance restricts results to stars within this many light
	// years of the origin. Zero means no limit.
	MaxDistance float64

	// CompanionsOf returns the companions recorded for the named
	// primary. When set the other filters are ignored.
	CompanionsOf string

	// GeneratedOnly restricts results to synthetic padding stars.
	GeneratedOnly bool

	// MaxResults caps the result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether no filter is set.
func (o QueryOptions) IsEmpty() bool {
	return o.Name == "" && o.ClassLetter == "" && o.MaxDistance == 0 &&
		o.CompanionsOf == "" && !o.GeneratedOnly
}

// QueryResult is one star row returned from the catalog index.
type QueryResult struct {
	Name              string  `json:"name" yaml:"name"`
	X                 float64 `json:"x" yaml:"x"`
	Y                 float64 `json:"y" yaml:"y"`
	Z                 float64 `json:"z" yaml:"z"`
	Distance          float64 `json:"distance" yaml:"distance"`
	SpectralClass     string  `json:"stellar_class" yaml:"stellar_class"`
	Mass              float64 `json:"mass" yaml:"mass"`
	Temperature       int     `json:"temperature" yaml:"temperature"`
	Luminosity        float64 `json:"luminosity" yaml:"luminosity"`
	AbsoluteMagnitude float64 `json:"absolute_magnitude" yaml:"absolute_magnitude"`
	Generated         bool    `json:"generated" yaml:"generated"`

	// Primary is set when the star is a recorded companion.
	Primary string `json:"primary,omitempty" yaml:"primary,omitempty"`
}

// Query returns catalog stars matching the options, nearest first.
func (s *Store) Query(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	limit := opts.MaxResults
	if limit <= 0 {
		limit = s.maxResults
	}

	var query strings.Builder
	var args []any

	query.WriteString(`SELECT s.name, s.x, s.y, s.z, s.distance,
		s.stellar_class, s.mass, s.temperature, s.luminosity,
		s.absolute_magnitude, s.generated, c.primary_star
	FROM stars s
	LEFT JOIN companions c ON c.companion = s.name`)

	if opts.CompanionsOf != "" {
		query.WriteString(` WHERE c.primary_star = ?`)
		args = append(args, opts.CompanionsOf)
	} else {
		var conditions []string
		if opts.Name != "" {
			conditions = append(conditions, `s.name LIKE ? COLLATE NOCASE`)
			args = append(args, "%"+opts.Name+"%")
		}
		if opts.ClassLetter != "" {
			conditions = append(conditions, `s.class_letter = ?`)
			args = append(args, strings.ToUpper(opts.ClassLetter))
		}
		if opts.MaxDistance > 0 {
			conditions = append(conditions, `s.distance <= ?`)
			args = append(args, opts.MaxDistance)
		}
		if opts.GeneratedOnly {
			conditions = append(conditions, `s.generated = 1`)
		}
		if len(conditions) > 0 {
			query.WriteString(` WHERE `)
			query.WriteString(strings.Join(conditions, ` AND `))
		}
	}

	query.WriteString(` ORDER BY s.distance ASC LIMIT ?`)
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var r QueryResult
		var class, primary sql.NullString
		var generated int
		err := rows.Scan(&r.Name, &r.X, &r.Y, &r.Z, &r.Distance,
			&class, &r.Mass, &r.Temperature, &r.Luminosity,
			&r.AbsoluteMagnitude, &generated, &primary)
		if err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}
		r.SpectralClass = class.String
		r.Primary = primary.String
		r.Generated = generated == 1
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating catalog rows: %w", err)
	}
	return results, nil
}

// Count returns the number of indexed stars.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM stars`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting stars: %w", err)
	}
	return n, nil
}
