package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"kdtboard/internal/config"
	"kdtboard/internal/logger"
	"kdtboard/internal/server"
	"kdtboard/internal/util"
)

var (
	port    = flag.Int("port", 0, "서버 포트 (config.toml에 명시되지 않은 경우에만 적용)")
	devMode = flag.Bool("dev", false, "개발 모드")
	dataDir = flag.String("dataDir", "", "데이터 디렉터리 (설정 파일보다 우선)")
)

func main() {
	flag.Parse()

	// .env가 있으면 환경변수로 로드 (없어도 무방)
	_ = godotenv.Load()

	log := logger.New()

	fmt.Println("==========================================")
	fmt.Println("  KDT 훈련과정 매출 현황판")
	fmt.Println("==========================================")

	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.WithError(err).Warn("설정 로드 실패, 기본 설정 사용")
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// 명령행 인자로 설정 덮어쓰기
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	if dir, err := config.EnsureDataDir(cfg); err != nil {
		log.WithError(err).Warn("데이터 디렉터리 생성 실패")
	} else {
		log.WithField("dataDir", dir).Info("데이터 디렉터리 준비 완료")
	}

	srv, err := server.NewServer(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("서버 초기화 실패")
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		log.WithField("port", cfg.Server.Port).Info("서버 시작")
		if err := srv.Run(addr); err != nil {
			log.WithError(err).Fatal("서버 실행 실패")
		}
	}()

	if !cfg.Server.DevMode {
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("브라우저를 자동으로 열 수 없습니다. 직접 접속하세요: %s\n", url)
		}
	} else {
		fmt.Printf("개발 모드: %s\n", url)
	}

	fmt.Println("\nCtrl+C로 종료합니다...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n서버를 종료합니다...")
	if err := srv.Close(); err != nil {
		log.WithError(err).Warn("종료 중 자원 정리 실패")
	}
}
