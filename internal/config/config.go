package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 애플리케이션 설정
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Data     DataConfig     `toml:"data"`
	Business BusinessConfig `toml:"business"`
	Board    BoardConfig    `toml:"board"`
}

// ServerConfig 서버 설정
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 데이터 설정
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// BusinessConfig 매출 보정 설정
// 수료율 보정 계수 곡선의 파라미터.
type BusinessConfig struct {
	MinFactor   float64 `toml:"min_factor"`   // 수료율 0%의 계수
	MaxFactor   float64 `toml:"max_factor"`   // 계수 상한
	CurveBase   float64 `toml:"curve_base"`   // 지수 곡선 밑
	CurveSlope  float64 `toml:"curve_slope"`  // 지수 곡선 기울기
	LinearCurve bool    `toml:"linear_curve"` // true면 선형 보간 사용
}

// BoardConfig 게시판 설정
type BoardConfig struct {
	MasterPassword string `toml:"master_password"`
}

// LoadConfigInfo 설정 로드 메타 정보
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig 기본 설정
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20280,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Business: BusinessConfig{
			MinFactor:  0.5,
			MaxFactor:  1.25,
			CurveBase:  2,
			CurveSlope: 2,
		},
		Board: BoardConfig{},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 실행 파일 디렉터리
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo config.toml 로드 + 메타 정보 반환
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// 설정 파일이 없으면 기본값 사용
			applyEnvOverrides(config)
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	applyEnvOverrides(config)

	return config, info, nil
}

// applyEnvOverrides 환경변수 우선 (배포 환경에서 파일 수정 없이 교체)
func applyEnvOverrides(config *AppConfig) {
	if v := os.Getenv("KDTBOARD_MASTER_PASSWORD"); v != "" {
		config.Board.MasterPassword = v
	}
	if v := os.Getenv("KDTBOARD_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}
}

// LoadConfig config.toml 로드
// 설정 파일은 실행 파일과 같은 디렉터리에 둔다.
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// SaveConfig 설정 저장
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// EnsureDataDir 데이터 디렉터리 보장
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := filepath.Join(exeDir, config.Data.DataDir)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	subdirs := []string{"uploads", "exports"}
	for _, subdir := range subdirs {
		path := filepath.Join(dataDir, subdir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return "", err
		}
	}

	return dataDir, nil
}
