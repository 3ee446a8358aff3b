package handler

// indexHTML はGET /で返すエンドポイント一覧ページ。
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>VK Mini App API</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, sans-serif;
            margin: 0;
            padding: 2rem;
            background: #f5f5f5;
        }
        .container {
            max-width: 800px;
            margin: 0 auto;
            background: white;
            padding: 2rem;
            border-radius: 8px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
        }
        h1 {
            color: #333;
            border-bottom: 2px solid #0070f3;
            padding-bottom: 0.5rem;
        }
        .endpoint {
            background: #f8f9fa;
            padding: 1rem;
            margin: 1rem 0;
            border-radius: 6px;
            border-left: 4px solid #0070f3;
        }
        .method {
            display: inline-block;
            background: #0070f3;
            color: white;
            padding: 0.25rem 0.5rem;
            border-radius: 4px;
            font-weight: bold;
            margin-right: 1rem;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>🚀 VK Mini App API</h1>
        <p>API сервер для приложения "Вынос мусора"</p>

        <div class="endpoint">
            <span class="method">POST</span>
            <strong>/api/auth/vk</strong> - Аутентификация через VK
        </div>

        <div class="endpoint">
            <span class="method">GET</span>
            <strong>/api/users/&#123;vk_id&#125;</strong> - Получить пользователя по VK ID
        </div>

        <div class="endpoint">
            <span class="method">PUT</span>
            <strong>/api/users/&#123;vk_id&#125;/phone</strong> - Обновить телефон
        </div>

        <div class="endpoint">
            <span class="method">PUT</span>
            <strong>/api/users/&#123;vk_id&#125;/email</strong> - Обновить email
        </div>

        <div class="endpoint">
            <span class="method">GET</span>
            <strong>/api/users/&#123;user_id&#125;/addresses</strong> - Получить адреса пользователя
        </div>

        <div class="endpoint">
            <span class="method">POST</span>
            <strong>/api/addresses</strong> - Создать адрес
        </div>

        <div class="endpoint">
            <span class="method">DELETE</span>
            <strong>/api/addresses/&#123;address_id&#125;</strong> - Удалить адрес
        </div>

        <p><a href="/health">Health check</a> · <a href="/metrics">Metrics</a></p>
    </div>
</body>
</html>
`
