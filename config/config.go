package config

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv 读取当前目录的 .env；不存在时只用进程环境变量
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
}
