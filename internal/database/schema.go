package database

import "github.com/emilythestrangee/board-game-reviews/backend/internal/models"

// Schema creates the tables if they are missing. Comments go with their
// review; nothing else cascades.
const Schema = `
    CREATE TABLE IF NOT EXISTS categories (
        slug VARCHAR PRIMARY KEY,
        description VARCHAR NOT NULL
    );

    CREATE TABLE IF NOT EXISTS users (
        username VARCHAR PRIMARY KEY,
        name VARCHAR NOT NULL,
        avatar_url VARCHAR
    );

    CREATE TABLE IF NOT EXISTS reviews (
        review_id SERIAL PRIMARY KEY,
        title VARCHAR NOT NULL,
        designer VARCHAR,
        owner VARCHAR NOT NULL REFERENCES users(username),
        review_body VARCHAR NOT NULL,
        review_img_url VARCHAR DEFAULT '` + models.DefaultReviewImgURL + `',
        category VARCHAR NOT NULL REFERENCES categories(slug),
        votes INT NOT NULL DEFAULT 0,
        created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
    );

    CREATE TABLE IF NOT EXISTS comments (
        comment_id SERIAL PRIMARY KEY,
        review_id INT NOT NULL REFERENCES reviews(review_id) ON DELETE CASCADE,
        author VARCHAR NOT NULL REFERENCES users(username),
        body VARCHAR NOT NULL,
        votes INT NOT NULL DEFAULT 0,
        created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
    );

    CREATE INDEX IF NOT EXISTS idx_reviews_category ON reviews(category);
    CREATE INDEX IF NOT EXISTS idx_comments_review_created ON comments(review_id, created_at);
    CREATE INDEX IF NOT EXISTS idx_comments_author ON comments(author);
    `

const dropSchema = `
    DROP TABLE IF EXISTS comments;
    DROP TABLE IF EXISTS reviews;
    DROP TABLE IF EXISTS users;
    DROP TABLE IF EXISTS categories;
    `

const truncateAll = `TRUNCATE comments, reviews, users, categories RESTART IDENTITY CASCADE`
