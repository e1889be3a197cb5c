package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	"github.com/George-20m/Sip-Match2/internal/datasources"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

var _ datasources.DrinkCatalog = (*Repository)(nil)
var _ datasources.InteractionStore = (*Repository)(nil)
var _ datasources.UserStore = (*Repository)(nil)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const drinkColumns = "id, product_code, name, name_arabic, category, subcategory, " +
	"temperature, caffeine_level, sweetness_level, vegan, vegetarian, " +
	"flavor_profile, intensity, best_for_moods, best_for_weather, " +
	"best_time_of_day, seasonal, description"

func (r *Repository) ListDrinks(
	ctx context.Context,
	filters domain.DrinkFilters,
) ([]domain.Drink, error) {
	sb := sqlbuilder.Select(drinkColumns)
	sb.From("drinks")

	conds := buildDrinksConditions(sb, filters)
	if len(conds) > 0 {
		sb.Where(conds...)
	}
	sb.OrderBy("name")

	query, args := sb.Build()
	return r.queryDrinks(ctx, query, args)
}

func (r *Repository) FetchDrinksByID(
	ctx context.Context,
	ids []string,
) (map[string]domain.Drink, error) {
	return r.fetchDrinksBy(ctx, "id", ids, func(d domain.Drink) string { return d.ID })
}

func (r *Repository) FetchDrinksByName(
	ctx context.Context,
	names []string,
) (map[string]domain.Drink, error) {
	return r.fetchDrinksBy(ctx, "name", names, func(d domain.Drink) string { return d.Name })
}

func (r *Repository) fetchDrinksBy(
	ctx context.Context,
	column string,
	values []string,
	key func(domain.Drink) string,
) (map[string]domain.Drink, error) {
	if len(values) == 0 {
		return map[string]domain.Drink{}, nil
	}

	args := make([]interface{}, 0, len(values))
	for _, v := range values {
		args = append(args, v)
	}

	sb := sqlbuilder.Select(drinkColumns)
	sb.From("drinks")
	sb.Where(sb.In(column, args...))

	query, queryArgs := sb.Build()
	drinks, err := r.queryDrinks(ctx, query, queryArgs)
	if err != nil {
		return nil, err
	}

	drinkMap := make(map[string]domain.Drink, len(drinks))
	for _, drink := range drinks {
		drinkMap[key(drink)] = drink
	}
	return drinkMap, nil
}

func (r *Repository) queryDrinks(ctx context.Context, query string, args []interface{}) ([]domain.Drink, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running drinks query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	drinks := []domain.Drink{}
	for rows.Next() {
		drink, err := scanDrink(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning drinks: %w", err)
		}
		drinks = append(drinks, drink)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return drinks, nil
}

func scanDrink(rows *sql.Rows) (domain.Drink, error) {
	var (
		drink                                                      domain.Drink
		productCode, subcategory, caffeineLevel, description       sql.NullString
		sweetness, intensity                                       sql.NullInt64
		seasonal                                                   sql.NullBool
		flavorProfile, bestForMoods, bestForWeather, bestTimeOfDay []byte
	)

	if err := rows.Scan(
		&drink.ID,
		&productCode,
		&drink.Name,
		&drink.NameArabic,
		&drink.Category,
		&subcategory,
		&drink.Temperature,
		&caffeineLevel,
		&sweetness,
		&drink.Vegan,
		&drink.Vegetarian,
		&flavorProfile,
		&intensity,
		&bestForMoods,
		&bestForWeather,
		&bestTimeOfDay,
		&seasonal,
		&description,
	); err != nil {
		return domain.Drink{}, err
	}

	drink.ProductCode = productCode.String
	drink.Subcategory = subcategory.String
	drink.CaffeineLevel = caffeineLevel.String
	drink.SweetnessLevel = int(sweetness.Int64)
	drink.Intensity = int(intensity.Int64)
	drink.Seasonal = seasonal.Bool
	drink.Description = description.String

	for _, col := range []struct {
		raw  []byte
		dest *[]string
	}{
		{flavorProfile, &drink.FlavorProfile},
		{bestForMoods, &drink.BestForMoods},
		{bestForWeather, &drink.BestForWeather},
		{bestTimeOfDay, &drink.BestTimeOfDay},
	} {
		if len(col.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(col.raw, col.dest); err != nil {
			return domain.Drink{}, fmt.Errorf("decoding drink tag column: %w", err)
		}
	}

	return drink, nil
}

func buildDrinksConditions(sb *sqlbuilder.SelectBuilder, filters domain.DrinkFilters) []string {
	var conds []string

	if filters.Category != "" {
		conds = append(conds, sb.Equal("category", filters.Category))
	}

	if filters.Temperature != "" {
		conds = append(conds, sb.Equal("temperature", filters.Temperature))
	}

	if filters.CaffeineLevel != "" {
		conds = append(conds, sb.Equal("caffeine_level", filters.CaffeineLevel))
	}

	if filters.VeganOnly {
		conds = append(conds, sb.Equal("vegan", true))
	}

	if filters.NameSearch != "" {
		pattern := "%" + filters.NameSearch + "%"
		conds = append(conds, sb.Or(
			sb.Like("name", pattern),
			sb.Like("name_arabic", pattern),
		))
	}

	return conds
}
