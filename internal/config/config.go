package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/jesses-code-adventures/cms/internal/logger"
)

const devSecretKey = "dev-secret-key-change-me"

type Config struct {
	DatabaseURL    string
	DatabaseDriver string
	DatabaseName   string

	HTTPAddr    string
	SecretKey   string
	CORSOrigins []string

	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string

	TaxRate  decimal.Decimal
	RoundOff decimal.Decimal
	LogoPath string

	Company Company

	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string

	DevMode bool
}

// Company holds the letterhead and bank box printed on invoices and receipts.
type Company struct {
	Name         string
	Owner        string
	AddressLines []string
	Phone        string
	Email        string
	BankName     string
	BankAccount  string
	BankIFSC     string
	PaymentTerms string
}

// Overrides carries values set from CLI flags. Empty fields fall back to the environment.
type Overrides struct {
	DatabaseURL    string
	DatabaseDriver string
	HTTPAddr       string
	DevMode        string
}

func Load(o Overrides) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	dbDriver := o.DatabaseDriver
	if dbDriver == "" {
		dbDriver = getEnv("DATABASE_DRIVER", "sqlite3")
	}

	dbConn := o.DatabaseURL
	if dbConn == "" {
		dbConn = getEnv("DATABASE_URL", "")
	}
	if dbConn == "" {
		if dbDriver == "mysql" {
			dbConn = MySQLDSN()
		} else {
			dbConn = "./cms.db"
		}
	}

	addr := o.HTTPAddr
	if addr == "" {
		addr = getEnv("HTTP_ADDR", ":8080")
	}

	taxRate, err := decimal.NewFromString(getEnv("TAX_RATE", "0.09"))
	if err != nil {
		return nil, fmt.Errorf("invalid TAX_RATE: %w", err)
	}
	roundOff, err := decimal.NewFromString(getEnv("ROUND_OFF", "0.00"))
	if err != nil {
		return nil, fmt.Errorf("invalid ROUND_OFF: %w", err)
	}

	// Dev mode defaults to true for local builds, false for prod
	isDevMode := o.DevMode == "true" || (o.DevMode == "" && getEnv("DEV_MODE", "true") == "true")

	cfg := &Config{
		DatabaseURL:       dbConn,
		DatabaseDriver:    dbDriver,
		DatabaseName:      getEnv("DATABASE_NAME", "cms"),
		HTTPAddr:          addr,
		SecretKey:         getEnv("SECRET_KEY", devSecretKey),
		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", "http://localhost:8080"), ","),
		AdminUsername:     getEnv("ADMIN_USERNAME", ""),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		TaxRate:           taxRate,
		RoundOff:          roundOff,
		LogoPath:          getEnv("LOGO_PATH", "Logo.jpg"),
		Company:           loadCompany(),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:     getEnv("LOG_TIME_FORMAT", "15:04:05"),
		LogOutput:         getEnv("LOG_OUTPUT", "stderr"),
		DevMode:           isDevMode,
	}

	return cfg, nil
}

func loadCompany() Company {
	return Company{
		Name:  getEnv("COMPANY_NAME", "OM Enterprises"),
		Owner: getEnv("COMPANY_OWNER", "LAXMAN A. GHARAT"),
		AddressLines: splitList(getEnv("COMPANY_ADDRESS",
			"Room No. A/B49,|Jai Tulja Bhavani Welfare Society,|S.V Road, Shanti Nagar,|Dahisar (East),Mumbai- 400068,"), "|"),
		Phone:        getEnv("COMPANY_PHONE", "+(91) 9594105903 / 8779240990"),
		Email:        getEnv("COMPANY_EMAIL", "gharatlaxman44@gmail.com"),
		BankName:     getEnv("BANK_NAME", "Apna Sahakari Bank Ltd"),
		BankAccount:  getEnv("BANK_ACCOUNT", "014012xxxx177"),
		BankIFSC:     getEnv("BANK_IFSC", "ASBI0000014"),
		PaymentTerms: getEnv("PAYMENT_TERMS", "Payment within 7 days of submission of bill."),
	}
}

// MySQLDSN assembles a DSN from the discrete DB_* variables.
func MySQLDSN() string {
	mc := mysql.NewConfig()
	mc.User = getEnv("DB_USER", "root")
	mc.Passwd = getEnv("DB_PASSWORD", "")
	mc.Net = "tcp"
	mc.Addr = getEnv("DB_HOST", "127.0.0.1") + ":" + getEnv("DB_PORT", "3306")
	mc.DBName = getEnv("DB_NAME", "cms")
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

// UsingDevSecret reports whether SECRET_KEY was left at its development default.
func (c *Config) UsingDevSecret() bool {
	return c.SecretKey == devSecretKey
}

func (c *Config) LoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func (c *Config) Dump() {
	fmt.Printf("Database Name: %s\n", c.DatabaseName)
	fmt.Printf("Database URL: %s\n", c.DatabaseURL)
	fmt.Printf("Database Driver: %s\n", c.DatabaseDriver)
	fmt.Printf("HTTP Address: %s\n", c.HTTPAddr)
	fmt.Printf("Tax Rate: %s\n", c.TaxRate.String())
	fmt.Printf("Round Off: %s\n", c.RoundOff.StringFixed(2))
	fmt.Printf("Logo Path: %s\n", c.LogoPath)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
