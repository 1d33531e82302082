// Package loyalty содержит правила реферальной программы и расчет комиссии.
package loyalty

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Rules содержит параметры программы лояльности
type Rules struct {
	CommissionRate        decimal.Decimal // Доля от суммы заказа для реферера
	PointsPerTaka         int64           // Баллов за 1 taka
	MinWithdrawPoints     int64           // Минимум баллов для вывода
	FreeShippingThreshold decimal.Decimal // Сумма, начиная с которой доставка бесплатна
	ShippingFee           decimal.Decimal // Стоимость доставки
}

// DefaultRules возвращает правила по умолчанию
func DefaultRules() Rules {
	return Rules{
		CommissionRate:        decimal.RequireFromString("0.05"),
		PointsPerTaka:         10,
		MinWithdrawPoints:     1000,
		FreeShippingThreshold: decimal.NewFromInt(5000),
		ShippingFee:           decimal.NewFromInt(100),
	}
}

// rulesFile описывает YAML файл с правилами. Незаданные поля берутся из DefaultRules.
type rulesFile struct {
	CommissionRate        *float64 `yaml:"commission_rate"`
	PointsPerTaka         *int64   `yaml:"points_per_taka"`
	MinWithdrawPoints     *int64   `yaml:"min_withdraw_points"`
	FreeShippingThreshold *float64 `yaml:"free_shipping_threshold"`
	ShippingFee           *float64 `yaml:"shipping_fee"`
}

// LoadRules читает правила из YAML файла. Пустой путь означает правила по умолчанию.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read loyalty rules %s: %w", path, err)
	}

	return ParseRules(content)
}

// ParseRules разбирает YAML с правилами поверх значений по умолчанию
func ParseRules(content []byte) (Rules, error) {
	rules := DefaultRules()

	var file rulesFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return Rules{}, fmt.Errorf("failed to parse loyalty rules: %w", err)
	}

	if file.CommissionRate != nil {
		rules.CommissionRate = decimal.NewFromFloat(*file.CommissionRate)
	}
	if file.PointsPerTaka != nil {
		rules.PointsPerTaka = *file.PointsPerTaka
	}
	if file.MinWithdrawPoints != nil {
		rules.MinWithdrawPoints = *file.MinWithdrawPoints
	}
	if file.FreeShippingThreshold != nil {
		rules.FreeShippingThreshold = decimal.NewFromFloat(*file.FreeShippingThreshold)
	}
	if file.ShippingFee != nil {
		rules.ShippingFee = decimal.NewFromFloat(*file.ShippingFee)
	}

	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}

	return rules, nil
}

// Validate проверяет согласованность правил
func (r Rules) Validate() error {
	if r.CommissionRate.IsNegative() || r.CommissionRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("loyalty rules: commission_rate must be in [0, 1], got %s", r.CommissionRate)
	}
	if r.PointsPerTaka <= 0 {
		return fmt.Errorf("loyalty rules: points_per_taka must be positive, got %d", r.PointsPerTaka)
	}
	if r.MinWithdrawPoints < 1 {
		return fmt.Errorf("loyalty rules: min_withdraw_points must be at least 1, got %d", r.MinWithdrawPoints)
	}
	if r.FreeShippingThreshold.IsNegative() || r.ShippingFee.IsNegative() {
		return fmt.Errorf("loyalty rules: shipping values must not be negative")
	}
	return nil
}
