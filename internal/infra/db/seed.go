package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

type seedArticle struct {
	title     string
	excerpt   string
	content   string
	thumbnail string
	category  string
	tags      []string
	readTime  int
}

var seedArticles = []seedArticle{
	{
		title:     "Nuxt 4の新機能について",
		excerpt:   "Nuxt 4で追加された新機能や改善点について詳しく解説します。パフォーマンスの向上やDXの改善など、注目すべきポイントをまとめました。",
		content:   "# Nuxt 4の新機能について\n\nNuxt 4で追加された新機能や改善点について詳しく解説します。\n\n## パフォーマンスの向上\n\nNuxt 4では、ビルド時間が大幅に短縮されました...",
		thumbnail: "https://images.unsplash.com/photo-1633356122544-f134324a6cee?w=800&h=400&fit=crop",
		category:  "テクノロジー",
		tags:      []string{"Nuxt.js", "Vue.js", "Frontend"},
		readTime:  5,
	},
	{
		title:     "モダンなWebデザインのトレンド",
		excerpt:   "2025年のWebデザインのトレンドを紹介します。ミニマリズム、大胆なタイポグラフィ、インタラクティブな要素など、最新のデザイン手法を解説。",
		content:   "# モダンなWebデザインのトレンド\n\n2025年のWebデザインのトレンドを紹介します...",
		thumbnail: "https://images.unsplash.com/photo-1561070791-2526d30994b5?w=800&h=400&fit=crop",
		category:  "デザイン",
		tags:      []string{"Design", "CSS", "UI/UX"},
		readTime:  6,
	},
	{
		title:     "TypeScriptで型安全なコードを書く",
		excerpt:   "TypeScriptを使って型安全なコードを書くためのテクニックを紹介します。ジェネリクス、ユーティリティ型、型ガードなどを活用した実践的な方法を解説。",
		content:   "# TypeScriptで型安全なコードを書く\n\nTypeScriptを使って型安全なコードを書くためのテクニックを紹介します...",
		thumbnail: "https://images.unsplash.com/photo-1516116216624-53e697fedbea?w=800&h=400&fit=crop",
		category:  "テクノロジー",
		tags:      []string{"TypeScript", "JavaScript", "Frontend"},
		readTime:  7,
	},
}

// SeedArticles inserts the demo article set when the table is empty.
// Intended for local development (DB_SEED=true); a no-op once any article exists.
func SeedArticles(database *sql.DB) error {
	var count int64
	if err := database.QueryRow(`SELECT COUNT(*) FROM articles`).Scan(&count); err != nil {
		return fmt.Errorf("seed: count: %w", err)
	}
	if count > 0 {
		return nil
	}

	const query = `
INSERT INTO articles (title, excerpt, content, thumbnail, category, tags, read_time)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, a := range seedArticles {
		tags, err := json.Marshal(a.tags)
		if err != nil {
			return fmt.Errorf("seed: marshal tags: %w", err)
		}
		if _, err := database.Exec(query,
			a.title, a.excerpt, a.content, a.thumbnail, a.category, tags, a.readTime); err != nil {
			return fmt.Errorf("seed: insert %q: %w", a.title, err)
		}
	}
	return nil
}
