//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const reportDir = "./reports"

// Default 默认任务：显示帮助信息
func Default() {
	fmt.Println("StockBar 构建系统")
	fmt.Println("================")
	fmt.Println("可用任务:")
	fmt.Println("  mage build       - 构建 stockbar 命令行工具")
	fmt.Println("  mage test        - 运行所有测试")
	fmt.Println("  mage race        - 带竞态检测运行测试")
	fmt.Println("  mage clean       - 清理构建产物")
	fmt.Println("  mage lint        - 运行代码检查")
	fmt.Println("  mage coverage    - 生成测试覆盖率报告")
}

// Build 构建 stockbar
func Build() error {
	mg.Deps(Clean)

	fmt.Println("📦 构建 stockbar...")
	output := filepath.Join("./dist", "stockbar")
	if runtime.GOOS == "windows" {
		output += ".exe"
	}

	env := map[string]string{"CGO_ENABLED": "0"}
	if err := sh.RunWith(env, "go", "build", "-o", output, "./cmd/stockbar"); err != nil {
		return fmt.Errorf("构建 stockbar 失败: %v", err)
	}

	if info, err := os.Stat(output); err == nil {
		fmt.Printf("   ✅ stockbar: %d KB\n", info.Size()/1024)
	}
	return nil
}

// Test 运行所有测试
func Test() error {
	fmt.Println("🧪 运行测试...")

	cmd := exec.Command("go", "test", "./...", "-timeout=5m")
	cmd.Env = os.Environ()

	if output, err := cmd.CombinedOutput(); err != nil {
		fmt.Printf("测试失败输出:\n%s\n", string(output))
		return fmt.Errorf("测试失败: %v", err)
	}

	fmt.Println("✅ 测试通过!")
	return nil
}

// Race 带竞态检测运行测试
func Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Clean 清理构建产物
func Clean() error {
	fmt.Println("🧹 清理构建产物...")

	files, err := filepath.Glob("./dist/*")
	if err != nil {
		return fmt.Errorf("查找文件失败: %v", err)
	}
	for _, file := range files {
		if err := os.Remove(file); err != nil {
			fmt.Printf("警告: 无法删除文件 %s: %v\n", file, err)
		}
	}

	if err := os.RemoveAll(filepath.Join(reportDir, "coverage.out")); err != nil {
		fmt.Printf("警告: 清理覆盖率文件失败: %v\n", err)
	}
	return nil
}

// Lint 运行格式和 vet 检查
func Lint() error {
	fmt.Println("🔍 运行代码检查...")

	output, err := sh.Output("gofmt", "-l", "./cmd", "./pkg")
	if err != nil {
		return fmt.Errorf("gofmt 检查失败: %v", err)
	}
	if output != "" {
		return fmt.Errorf("以下文件需要 gofmt:\n%s", output)
	}

	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return fmt.Errorf("go vet 失败: %v", err)
	}

	fmt.Println("✅ 代码检查通过!")
	return nil
}

// Coverage 生成测试覆盖率报告
func Coverage() error {
	fmt.Println("📈 生成测试覆盖率报告...")

	if err := os.MkdirAll(reportDir, 0755); err != nil {
		return fmt.Errorf("创建报告目录失败: %v", err)
	}

	profile := filepath.Join(reportDir, "coverage.out")
	if err := sh.Run("go", "test", "./...", "-coverprofile="+profile, "-covermode=atomic"); err != nil {
		return fmt.Errorf("生成覆盖率失败: %v", err)
	}

	html := filepath.Join(reportDir, "coverage.html")
	if err := sh.Run("go", "tool", "cover", "-html="+profile, "-o", html); err != nil {
		return fmt.Errorf("生成HTML报告失败: %v", err)
	}
	if err := sh.RunV("go", "tool", "cover", "-func="+profile); err != nil {
		return fmt.Errorf("显示覆盖率失败: %v", err)
	}

	fmt.Println("   详细报告: file://" + getAbsolutePath(html))
	return nil
}

func getAbsolutePath(relativePath string) string {
	absPath, err := filepath.Abs(relativePath)
	if err != nil {
		return relativePath
	}
	return absPath
}

func init() {
	os.MkdirAll("./dist", 0755)
}
