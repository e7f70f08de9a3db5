package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App    App    `mapstructure:",squash"`
	Server Server `mapstructure:",squash"`
	GA4    GA4    `mapstructure:",squash"`
	Report Report `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type GA4 struct {
	BaseURL      string `mapstructure:"ga4_base_url"`
	ChannelGroup string `mapstructure:"ga4_channel_group"`
}

type Report struct {
	Months      []string `mapstructure:"report_months"`
	SheetName   string   `mapstructure:"report_sheet_name"`
	Filename    string   `mapstructure:"report_filename"`
	ColumnWidth float64  `mapstructure:"report_column_width"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("GA4_BASE_URL", "https://analyticsdata.googleapis.com/v1beta")
	viper.SetDefault("GA4_CHANNEL_GROUP", "organic search")

	// Período padrão do relatório: abril a dezembro de 2024
	viper.SetDefault("REPORT_MONTHS", "2024-04,2024-05,2024-06,2024-07,2024-08,2024-09,2024-10,2024-11,2024-12")
	viper.SetDefault("REPORT_SHEET_NAME", "GA4 Data")
	viper.SetDefault("REPORT_FILENAME", "GA4_Report_Insights.xlsx")
	viper.SetDefault("REPORT_COLUMN_WIDTH", 15)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
