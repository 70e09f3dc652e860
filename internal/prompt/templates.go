package prompt

// The template literals are sent verbatim, indentation included. The worked
// example is part of every request regardless of the language pair.

// translateTemplate takes text, source language and target language.
const translateTemplate = `    
        Human:
        Task:  An expert in IT and AWS, translate the given text from the source language to the target language.

        Source language: %[2]s
        Target language: %[3]s
        
        Text to translate: %[1]s
        
        Translation steps:
        Translate the following blog content from English to Vietnamese, ensuring the context is preserved and all IT and AWS technical terms are kept intact. Maintain the accuracy of technical details and use appropriate Vietnamese terminology where necessary. Follow the steps for accurate translation and contextual adaptation:
        
        1. Read and understand the content thoroughly to grasp the context and purpose.
        2. Identify and note down the specific IT and AWS technical terms to be retained.
        3. Prepare supporting materials, such as technical dictionaries or official AWS documentation, for reference.
        4. Perform a rough translation, maintaining the technical terms and focusing on conveying the correct meaning.
        5. Adjust grammar and sentence structure to ensure fluency and readability.
        6. Compare the translation with the original to ensure completeness and accuracy.
        7. Review and edit the translation for coherence, spelling, and grammatical errors.
        8. If possible, have an expert in IT and AWS review the translation for accuracy and context.
        9. Finalize the translation, ensuring proper formatting and layout for publication.
        Here’s an example paragraph for translation:
        
        Original English Text:
        Amazon S3 provides scalable object storage with high availability and low latency. It is ideal for use cases such as backup and restore, big data analytics, and content distribution.
        
        Translated Vietnamese Text:
        Amazon S3 cung cấp lưu trữ đối tượng có khả năng mở rộng với tính sẵn sàng cao và độ trễ thấp. Nó lý tưởng cho các trường hợp sử dụng như sao lưu và khôi phục, phân tích dữ liệu lớn và phân phối nội dung.

        Only output the response in the target language
        
        <translated_text>
        </translated_text>

        Assistant:
    `

// respondTemplate takes text and target language.
const respondTemplate = `    
        Human:
        Task: An expert in IT and AWS, Respond to the given text in the target language.

        Target language: %[2]s
        
        Text to respond to: %[1]s
        
        Steps:
        Translate the following blog content from English to Vietnamese, ensuring the context is preserved and all IT and AWS technical terms are kept intact. Maintain the accuracy of technical details and use appropriate Vietnamese terminology where necessary. Follow the steps for accurate translation and contextual adaptation:
        
        1. Read and understand the content thoroughly to grasp the context and purpose.
        2. Identify and note down the specific IT and AWS technical terms to be retained.
        3. Prepare supporting materials, such as technical dictionaries or official AWS documentation, for reference.
        4. Perform a rough translation, maintaining the technical terms and focusing on conveying the correct meaning.
        5. Adjust grammar and sentence structure to ensure fluency and readability.
        6. Compare the translation with the original to ensure completeness and accuracy.
        7. Review and edit the translation for coherence, spelling, and grammatical errors.
        8. If possible, have an expert in IT and AWS review the translation for accuracy and context.
        9. Finalize the translation, ensuring proper formatting and layout for publication.
        Here’s an example paragraph for translation:
        
        Original English Text:
        Amazon S3 provides scalable object storage with high availability and low latency. It is ideal for use cases such as backup and restore, big data analytics, and content distribution.
        
        Translated Vietnamese Text:
        Amazon S3 cung cấp lưu trữ đối tượng có khả năng mở rộng với tính sẵn sàng cao và độ trễ thấp. Nó lý tưởng cho các trường hợp sử dụng như sao lưu và khôi phục, phân tích dữ liệu lớn và phân phối nội dung.
        
        Only output the response in the target language
        
        <response>
        </response>

        Assistant:
    `

// analyzeTemplate takes the original text and its translation.
const analyzeTemplate = `    
        Human:
        Role: You are An expert in IT and AWS, a professional translator tasked with reviewing and analyzing translated text.
        
        Original text: %[1]s
        Bedrock Translated text: %[2]s
        
        Review process:
        1. Read the original text to understand the context and meaning,  including specialized IT and AWS terminology.
        2. Review the bedrock translated text for accuracy, fluency, and adherence to the original context,
        3. Evaluate the quality of the translation

        Ensure your analysis and response is in English

        <analysis>
        </analysis>
        
        Assistant:
    `
