// internal/api/sai/queries.go
package sai

// Запрос сделок трейдера, последние первыми (order_by: sequence desc).
// Фильтрация по базовому активу на стороне запроса не поддерживается
// и выполняется клиентом после выборки.
const tradesQuery = `
query Trades($trader: String!, $isOpen: Boolean, $limit: Int!) {
  perp {
    trades(
      where: { trader: $trader, isOpen: $isOpen }
      limit: $limit
      order_by: sequence
      order_desc: true
    ) {
      id
      trader
      isOpen
      isLong
      leverage
      openPrice
      closePrice
      openCollateralAmount
      collateralAmount
      openBlock { block block_ts }
      closeBlock { block block_ts }
      state {
        positionValue
        liquidationPrice
        pnlCollateral
        pnlPct
      }
      perpBorrowing {
        marketId
        baseToken { id name symbol }
        quoteToken { id name symbol }
      }
    }
  }
}
`

// Запрос цен оракула по всем токенам
const pricesQuery = `
query Prices($limit: Int!) {
  oracle {
    tokenPricesUsd(limit: $limit, order_by: token_id) {
      priceUsd
      token { id name symbol }
      lastUpdatedBlock { block block_ts }
    }
  }
}
`
