package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

func main() {
	// 1. 定义命令行参数
	addr := flag.String("addr", "http://localhost:8888", "INCL API 地址")
	action := flag.String("action", "reputation", "track | reputation | eligibility | stats | leaderboard | loan | repay")
	wallet := flag.String("wallet", "", "钱包地址")
	amount := flag.Float64("amount", 0, "贷款或还款金额 (loan/repay)")
	flag.Parse()

	query := url.Values{}
	if *wallet != "" {
		query.Set("wallet_address", *wallet)
	}
	payload := map[string]any{"wallet_address": *wallet}
	if *amount > 0 {
		payload["amount"] = *amount
	}

	// 2. 根据 action 选择接口
	var req *http.Request
	var err error
	switch *action {
	case "track":
		req, err = postJSON(*addr+"/api/users/track", payload)
	case "loan":
		req, err = postJSON(*addr+"/api/loans", payload)
	case "repay":
		req, err = postJSON(*addr+"/api/loans/repay", payload)
	case "reputation":
		req, err = http.NewRequest(http.MethodGet, *addr+"/api/reputation?"+query.Encode(), nil)
	case "eligibility":
		req, err = http.NewRequest(http.MethodGet, *addr+"/api/loans/eligibility?"+query.Encode(), nil)
	case "stats":
		req, err = http.NewRequest(http.MethodGet, *addr+"/api/users/stats?"+query.Encode(), nil)
	case "leaderboard":
		req, err = http.NewRequest(http.MethodGet, *addr+"/api/leaderboard", nil)
	default:
		log.Fatalf("错误: 未知 action %q", *action)
	}
	if err != nil {
		log.Fatalf("错误: 无法创建请求: %v", err)
	}

	// 3. 发送请求
	client := &http.Client{Timeout: 10 * time.Second}
	fmt.Printf("正向 %s 发送请求...\n", req.URL)

	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("错误: 发送请求失败: %v", err)
	}
	defer resp.Body.Close()

	// 4. 读取并打印响应结果
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("错误: 读取响应体失败: %v", err)
	}

	var pretty bytes.Buffer
	if json.Indent(&pretty, body, "", "  ") == nil {
		body = pretty.Bytes()
	}
	fmt.Println("\n--- 响应结果 ---")
	fmt.Printf("HTTP 状态码: %d\n", resp.StatusCode)
	fmt.Printf("响应体: %s\n", string(body))
}

func postJSON(target string, payload map[string]any) (*http.Request, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodPost, target, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}
